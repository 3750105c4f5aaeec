package registry

import (
	"time"

	"zikirmatik/internal/models"
)

// DailyHadiths is the general message-of-the-day pool.
var DailyHadiths = []models.Hadith{
	{
		Text:   "Müminler birbirlerini sevmede, birbirlerine merhamet ve şefkat göstermede tıpkı bir bedenin organları gibidir. Bedenin bir organı rahatsızlandığında diğer organlar da uykusuzluk ve yüksek ateşle bu acıya ortak olurlar.",
		Source: "Buhârî, Edeb 27; Müslim, Birr 66",
	},
	{
		Text:   "Kim Allah'a güvenir ve O'na tevekkül ederse, O, ona yeter. Şüphesiz Allah, emrini yerine getirendir. Allah her şey için bir ölçü tayin etmiştir.",
		Source: "Talâk Suresi, 3. Ayet",
	},
	{
		Text:   "En faziletli sadaka, sağlığın yerindeyken, malına düşkün olduğun, zengin olmayı umup fakirlikten korktuğun bir haldeyken verdiğin sadakadır.",
		Source: "Buhârî, Vesâyâ 21",
	},
	{
		Text:   "Emanete riayet etmeyenin (gerçek anlamda) imanı yoktur; sözünde durmayanın da dini yoktur.",
		Source: "Ahmed b. Hanbel, Müsned, III, 135",
	},
	{
		Text:   "Gerçek mücahit, Yüce Allah'a itaat yolunda nefsinin arzularına karşı cihad eden (nefsiyle mücadele eden) kimsedir.",
		Source: "Tirmizî, Fedâilü'l-Cihad 2",
	},
	{
		Text:   "Münafığın alameti üçtür: Konuştuğu zaman yalan söyler, kendisine bir şey emanet edildiğinde hainlik eder ve söz verdiği zaman sözünde durmaz.",
		Source: "Buhârî, Îman 24",
	},
	{
		Text:   "Her meşru ve güzel iş bir sadakadır. Kardeşine güler yüzle bakman sadakadır. İnsanlara yol göstermen sadakadır.",
		Source: "Buhârî, Edeb 33",
	},
	{
		Text:   "Hiçbir baba, çocuğuna güzel ahlak ve terbiyeden daha üstün ve kıymetli bir hediye veremez.",
		Source: "Tirmizî, Birr 33",
	},
	{
		Text:   "Dünya, mümin için bir zindan (kadar sıkıntılı), kâfir için ise (adeta) bir cennettir.",
		Source: "Müslim, Zühd 1",
	},
	{
		Text:   "Şüphesiz Allah güzeldir ve güzelliği sever. Kibir ise hakkı inkar etmek ve insanları küçümsemektir.",
		Source: "Müslim, Îman 147",
	},
	{
		Text:   "İnsanların en hayırlısı, ömrü uzun olan ve ameli güzel olandır. İnsanların en şerlisi ise ömrü uzun, ameli kötü olandır.",
		Source: "Tirmizî, Zühd 22",
	},
	{
		Text:   "Kim bir kardeşinin ihtiyacını giderirse Allah da onun ihtiyacını giderir. Kim bir Müslümanın sıkıntısını giderirse Allah da kıyamet günü onun sıkıntılarından birini giderir.",
		Source: "Müslim, Zikir 38",
	},
	{
		Text:   "Kim istiğfara devam ederse, Allah ona her darlıktan bir çıkış, her üzüntüden bir kurtuluş yolu gösterir ve onu beklemediği yerden rızıklandırır.",
		Source: "Ebû Dâvûd, Vitir 26",
	},
	{
		Text:   "Kolaylaştırınız, zorlaştırmayınız. Müjdeleyiniz, nefret ettirmeyiniz.",
		Source: "Buhârî, İlim 11; Müslim, Cihad 6",
	},
	{
		Text:   "Kim bir Müslümanın ayıbını örterse, Allah da dünya ve ahirette onun ayıbını örter.",
		Source: "Müslim, Zikir 38",
	},
}

// FridayMessages replaces the general pool on Fridays.
var FridayMessages = []models.Hadith{
	{
		Text:   "Günlerinizin en faziletlisi cuma günüdür. Bu günde bana çokça salavat getirin; zira sizin salavatlarınız bana sunulur.",
		Source: "Ebû Dâvûd, Salât 201",
	},
	{
		Text:   "Cuma günü hakkında: Onda öyle bir an vardır ki, Müslüman bir kul namaz kılarken o ana rastlar da Allah'tan bir şey isterse, Allah ona dilediğini mutlaka verir.",
		Source: "Buhârî, Cum'a 37; Müslim, Cum'a 13-15",
	},
	{
		Text:   "Kim cuma günü Kehf Suresi'ni okursa, iki cuma arası onun için nurla aydınlatılır.",
		Source: "Hâkim, Müstedrek, II, 399",
	},
	{
		Text:   "Cuma gününde yapılan dua ile cuma namazı arasında büyük bir bereket vardır; o günü zikirle, salavatla ve dua ile değerlendirin.",
		Source: "Müslim, Cum'a 18",
	},
	{
		Text:   "Güneşin doğduğu en hayırlı gün cuma günüdür. Âdem o gün yaratıldı, o gün cennete konuldu ve o gün cennetten çıkarıldı.",
		Source: "Müslim, Cum'a 17",
	},
	{
		Text:   "Hayırlı bir cuma, hayırlı bir haftanın anahtarıdır. Cumanızı zikirsiz geçirmeyin.",
		Source: "Dua",
	},
}

// DailyHadith returns the message of the day: a deterministic pick from
// the Friday pool on Fridays, else from the general pool. The index is the
// local midnight timestamp mod pool length, so every process on the same
// calendar day computes the same record without a persisted cursor.
func DailyHadith(now time.Time) models.Hadith {
	hasDaily := len(DailyHadiths) > 0
	hasFriday := len(FridayMessages) > 0

	pool := DailyHadiths
	if (now.Weekday() == time.Friday && hasFriday) || !hasDaily {
		pool = FridayMessages
	}
	if len(pool) == 0 {
		return models.Hadith{}
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayKey := midnight.Unix()
	if dayKey < 0 {
		dayKey = -dayKey
	}
	return pool[int(dayKey)%len(pool)]
}
