package registry

import (
	"strings"

	"zikirmatik/internal/models"
)

// EsmaUlHusna lists names of Allah with their meanings and customary
// repetition counts. Starting one of these materializes a custom zikhr
// item carrying the meaning as its description.
var EsmaUlHusna = []models.EsmaUlHusnaItem{
	{Name: "Ya Allah", ArabicName: "الله", Meaning: "Her şeyin gerçek mabudu, bütün kemal sıfatların sahibi.", Count: 66},
	{Name: "Ya Rahman", ArabicName: "الرحمن", Meaning: "Dünyada bütün mahlukata merhamet eden.", Count: 298},
	{Name: "Ya Rahim", ArabicName: "الرحيم", Meaning: "Ahirette müminlere sonsuz ikram edecek olan.", Count: 258},
	{Name: "Ya Melik", ArabicName: "الملك", Meaning: "Mülkün gerçek sahibi, her şeyin hükümdarı.", Count: 90},
	{Name: "Ya Kuddüs", ArabicName: "القدوس", Meaning: "Her türlü eksiklikten münezzeh, tertemiz.", Count: 170},
	{Name: "Ya Selam", ArabicName: "السلام", Meaning: "Her türlü tehlikeden selamete çıkaran.", Count: 131},
	{Name: "Ya Mümin", ArabicName: "المؤمن", Meaning: "Güven veren, emin kılan, koruyan.", Count: 137},
	{Name: "Ya Müheymin", ArabicName: "المهيمن", Meaning: "Her şeyi görüp gözeten.", Count: 145},
	{Name: "Ya Aziz", ArabicName: "العزيز", Meaning: "Mutlak galip, karşı gelinemeyen.", Count: 94},
	{Name: "Ya Cebbar", ArabicName: "الجبار", Meaning: "Dilediğini yaptıran, eksikleri tamamlayan.", Count: 206},
	{Name: "Ya Mütekebbir", ArabicName: "المتكبر", Meaning: "Büyüklükte eşi olmayan.", Count: 662},
	{Name: "Ya Halık", ArabicName: "الخالق", Meaning: "Yaratan, yoktan var eden.", Count: 731},
	{Name: "Ya Bari", ArabicName: "البارئ", Meaning: "Her şeyi kusursuz ve uyumlu yaratan.", Count: 213},
	{Name: "Ya Musavvir", ArabicName: "المصور", Meaning: "Varlıklara şekil ve suret veren.", Count: 336},
	{Name: "Ya Gaffar", ArabicName: "الغفار", Meaning: "Günahları örten ve çokça bağışlayan.", Count: 1281},
	{Name: "Ya Kahhar", ArabicName: "القهار", Meaning: "Her şeye galip gelen, kahreden.", Count: 306},
	{Name: "Ya Vehhab", ArabicName: "الوهاب", Meaning: "Karşılıksız hibeler veren.", Count: 14},
	{Name: "Ya Rezzak", ArabicName: "الرزاق", Meaning: "Bütün mahlukatın rızkını veren.", Count: 308},
	{Name: "Ya Fettah", ArabicName: "الفتاح", Meaning: "Her türlü kapıyı açan, zorlukları kolaylaştıran.", Count: 489},
	{Name: "Ya Alim", ArabicName: "العليم", Meaning: "Gizli açık her şeyi en ince detayına kadar bilen.", Count: 150},
	{Name: "Ya Kabıd", ArabicName: "القابض", Meaning: "Dilediğine darlık veren, sıkan.", Count: 903},
	{Name: "Ya Basıt", ArabicName: "الباسط", Meaning: "Dilediğine bolluk veren, genişleten.", Count: 72},
	{Name: "Ya Hafıd", ArabicName: "الخافض", Meaning: "Dilediğini alçaltan.", Count: 1481},
	{Name: "Ya Rafi", ArabicName: "الرافع", Meaning: "Dilediğini yükselten.", Count: 351},
	{Name: "Ya Muiz", ArabicName: "المعز", Meaning: "Dilediğini aziz kılan, şereflendiren.", Count: 117},
	{Name: "Ya Müzil", ArabicName: "المذل", Meaning: "Dilediğini zelil kılan.", Count: 770},
	{Name: "Ya Semi", ArabicName: "السميع", Meaning: "Gizli açık her sesi işiten.", Count: 180},
	{Name: "Ya Basir", ArabicName: "البصير", Meaning: "Her şeyi gören.", Count: 302},
	{Name: "Ya Hakem", ArabicName: "الحكم", Meaning: "Hükmeden, son kararı veren.", Count: 68},
	{Name: "Ya Adl", ArabicName: "العدل", Meaning: "Mutlak adalet sahibi.", Count: 104},
	{Name: "Ya Latif", ArabicName: "اللطيف", Meaning: "Lütuf ve ihsan sahibi, en ince işlerin içini bilen.", Count: 129},
	{Name: "Ya Habir", ArabicName: "الخبير", Meaning: "Her şeyin iç yüzünden haberdar olan.", Count: 812},
	{Name: "Ya Halim", ArabicName: "الحليم", Meaning: "Cezada acele etmeyen, yumuşak davranan.", Count: 88},
	{Name: "Ya Azim", ArabicName: "العظيم", Meaning: "Büyüklükte benzeri olmayan, pek yüce.", Count: 1020},
	{Name: "Ya Gafur", ArabicName: "الغفور", Meaning: "Affı ve mağfireti bol olan.", Count: 1286},
	{Name: "Ya Şekur", ArabicName: "الشكور", Meaning: "Az amele çok sevap veren.", Count: 526},
	{Name: "Ya Aliyy", ArabicName: "العلي", Meaning: "Yüceler yücesi.", Count: 110},
	{Name: "Ya Kebir", ArabicName: "الكبير", Meaning: "Büyüklükte benzeri olmayan.", Count: 232},
	{Name: "Ya Hafiz", ArabicName: "الحفيظ", Meaning: "Her şeyi koruyup gözeten.", Count: 998},
	{Name: "Ya Mukit", ArabicName: "المقيت", Meaning: "Her canlının gıdasını veren.", Count: 550},
	{Name: "Ya Hasib", ArabicName: "الحسيب", Meaning: "Kullarının hesabını en iyi gören.", Count: 80},
	{Name: "Ya Celil", ArabicName: "الجليل", Meaning: "Celal ve azamet sahibi.", Count: 73},
	{Name: "Ya Kerim", ArabicName: "الكريم", Meaning: "İkramı bol, cömertlerin cömerdi.", Count: 270},
	{Name: "Ya Rakib", ArabicName: "الرقيب", Meaning: "Her an gözetip kontrol eden.", Count: 312},
	{Name: "Ya Mucib", ArabicName: "المجيب", Meaning: "Dualara icabet eden.", Count: 55},
	{Name: "Ya Vasi", ArabicName: "الواسع", Meaning: "Rahmeti ve ilmi her şeyi kuşatan.", Count: 137},
	{Name: "Ya Hakim", ArabicName: "الحكيم", Meaning: "Her işi hikmetli olan.", Count: 78},
	{Name: "Ya Vedud", ArabicName: "الودود", Meaning: "Kullarını en çok seven, sevilmeye en layık olan.", Count: 20},
	{Name: "Ya Mecid", ArabicName: "المجيد", Meaning: "Şanı büyük ve yüksek olan.", Count: 57},
	{Name: "Ya Bais", ArabicName: "الباعث", Meaning: "Ölüleri dirilten, peygamberler gönderen.", Count: 573},
	{Name: "Ya Şehid", ArabicName: "الشهيد", Meaning: "Her şeye şahit olan.", Count: 319},
	{Name: "Ya Hakk", ArabicName: "الحق", Meaning: "Varlığı hiç değişmeyen, gerçek olan.", Count: 108},
	{Name: "Ya Vekil", ArabicName: "الوكيل", Meaning: "Kendisine güvenilen, işleri en iyi neticeye ulaştıran.", Count: 66},
	{Name: "Ya Kaviyy", ArabicName: "القوي", Meaning: "Sonsuz kudret sahibi.", Count: 116},
	{Name: "Ya Metin", ArabicName: "المتين", Meaning: "Kuvveti çok şiddetli, sarsılmayan.", Count: 500},
	{Name: "Ya Veliyy", ArabicName: "الولي", Meaning: "Müminlerin dostu ve yardımcısı.", Count: 46},
	{Name: "Ya Hamid", ArabicName: "الحميد", Meaning: "Her türlü övgüye layık olan.", Count: 62},
	{Name: "Ya Muhsi", ArabicName: "المحصي", Meaning: "Her şeyin sayısını bilen.", Count: 148},
	{Name: "Ya Mübdi", ArabicName: "المبدئ", Meaning: "Mahlukatı örneksiz yaratan.", Count: 56},
	{Name: "Ya Muid", ArabicName: "المعيد", Meaning: "Yaratılmışları yok edip yeniden dirilten.", Count: 124},
	{Name: "Ya Muhyi", ArabicName: "المحيي", Meaning: "Can veren, dirilten.", Count: 68},
	{Name: "Ya Mümit", ArabicName: "المميت", Meaning: "Canlıların ölümünü yaratan.", Count: 490},
	{Name: "Ya Hayy", ArabicName: "الحي", Meaning: "Ezeli ve ebedi hayat sahibi.", Count: 18},
	{Name: "Ya Kayyum", ArabicName: "القيوم", Meaning: "Zatı ile var olan, her şeyi ayakta tutan.", Count: 156},
	{Name: "Ya Vacid", ArabicName: "الواجد", Meaning: "Dilediğini dilediği anda bulan.", Count: 14},
	{Name: "Ya Macid", ArabicName: "الماجد", Meaning: "Kadri büyük, keremi bol.", Count: 48},
	{Name: "Ya Vahid", ArabicName: "الواحد", Meaning: "Zatında ve sıfatlarında eşi olmayan, tek.", Count: 19},
	{Name: "Ya Samed", ArabicName: "الصمد", Meaning: "Hiçbir şeye muhtaç olmayan, herkesin muhtaç olduğu.", Count: 134},
	{Name: "Ya Kadir", ArabicName: "القادر", Meaning: "Dilediğini dilediği gibi yapmaya gücü yeten.", Count: 305},
	{Name: "Ya Muktedir", ArabicName: "المقتدر", Meaning: "Kuvvet sahipleri üzerinde dilediği gibi tasarruf eden.", Count: 744},
	{Name: "Ya Mukaddim", ArabicName: "المقدم", Meaning: "Dilediğini öne geçiren.", Count: 184},
	{Name: "Ya Muahhir", ArabicName: "المؤخر", Meaning: "Dilediğini geri bırakan.", Count: 847},
	{Name: "Ya Evvel", ArabicName: "الأول", Meaning: "Başlangıcı olmayan, ilk.", Count: 37},
	{Name: "Ya Ahir", ArabicName: "الآخر", Meaning: "Sonu olmayan, son.", Count: 801},
	{Name: "Ya Zahir", ArabicName: "الظاهر", Meaning: "Varlığı delillerle apaçık olan.", Count: 1106},
	{Name: "Ya Batın", ArabicName: "الباطن", Meaning: "Zatı gizli, akılların idrakinden münezzeh olan.", Count: 62},
	{Name: "Ya Vali", ArabicName: "الوالي", Meaning: "Kainatı idare eden.", Count: 47},
	{Name: "Ya Müteali", ArabicName: "المتعالي", Meaning: "Noksanlıklardan yüce ve münezzeh olan.", Count: 551},
	{Name: "Ya Berr", ArabicName: "البر", Meaning: "İyiliği ve ihsanı bol olan.", Count: 202},
	{Name: "Ya Tevvab", ArabicName: "التواب", Meaning: "Tövbeleri çokça kabul eden.", Count: 409},
	{Name: "Ya Müntekim", ArabicName: "المنتقم", Meaning: "Zalimlerden intikam alan.", Count: 630},
	{Name: "Ya Afüvv", ArabicName: "العفو", Meaning: "Günahları silip yok eden.", Count: 156},
	{Name: "Ya Rauf", ArabicName: "الرؤوف", Meaning: "Pek şefkatli, merhametli.", Count: 287},
	{Name: "Ya Malikü'l-Mülk", ArabicName: "مالك الملك", Meaning: "Mülkün ebedi sahibi.", Count: 212},
	{Name: "Ya Zü'l-Celali ve'l-İkram", ArabicName: "ذو الجلال والإكرام", Meaning: "Azamet ve kerem sahibi.", Count: 1100},
	{Name: "Ya Muksit", ArabicName: "المقسط", Meaning: "Bütün işleri denk ve adaletli yapan.", Count: 209},
	{Name: "Ya Cami", ArabicName: "الجامع", Meaning: "Dilediğini dilediği yerde toplayan.", Count: 114},
	{Name: "Ya Ganiyy", ArabicName: "الغني", Meaning: "Hiçbir şeye muhtaç olmayan, zengin.", Count: 1060},
	{Name: "Ya Muğni", ArabicName: "المغني", Meaning: "Dilediğini zengin eden.", Count: 1100},
	{Name: "Ya Mani", ArabicName: "المانع", Meaning: "Dilemediği şeylere engel olan.", Count: 161},
	{Name: "Ya Darr", ArabicName: "الضار", Meaning: "Hikmeti gereği zarar ve elem veren.", Count: 1001},
	{Name: "Ya Nafi", ArabicName: "النافع", Meaning: "Hayır ve menfaat veren.", Count: 201},
	{Name: "Ya Nur", ArabicName: "النور", Meaning: "Alemleri nurlandıran.", Count: 256},
	{Name: "Ya Hadi", ArabicName: "الهادي", Meaning: "Hidayet veren, doğru yola ulaştıran.", Count: 20},
	{Name: "Ya Bedi", ArabicName: "البديع", Meaning: "Örneksiz ve eşsiz yaratan.", Count: 86},
	{Name: "Ya Baki", ArabicName: "الباقي", Meaning: "Varlığının sonu olmayan.", Count: 113},
	{Name: "Ya Varis", ArabicName: "الوارث", Meaning: "Her şeyin son ve tek sahibi.", Count: 707},
	{Name: "Ya Reşid", ArabicName: "الرشيد", Meaning: "Her işi hedefe ulaştıran, irşad eden.", Count: 514},
	{Name: "Ya Sabur", ArabicName: "الصبور", Meaning: "Cezada acele etmeyen, sabırlı.", Count: 298},
}

// SearchEsmaUlHusna filters the list by a case-insensitive substring of
// the name or the meaning.
func SearchEsmaUlHusna(query string) []models.EsmaUlHusnaItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return EsmaUlHusna
	}
	var matched []models.EsmaUlHusnaItem
	for _, item := range EsmaUlHusna {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Meaning), query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// FindEsmaUlHusna looks up a name entry exactly.
func FindEsmaUlHusna(name string) (models.EsmaUlHusnaItem, bool) {
	for _, item := range EsmaUlHusna {
		if item.Name == name {
			return item, true
		}
	}
	return models.EsmaUlHusnaItem{}, false
}
