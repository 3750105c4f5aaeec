package registry

import (
	"sort"
	"time"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
)

// SpecialDays maps YYYY-MM-DD dates to religious calendar entries.
var SpecialDays = map[string]models.SpecialDay{
	"2026-01-15": {
		Title:       "Miraç Kandili",
		Description: "Peygamber Efendimizin göğe yükseliş mucizesinin yıl dönümü.",
		Advice:      "Bu gece bolca kaza namazı kılınmalı, Kur'an-ı Kerim okunmalı ve geçmiş günahlar için tövbe edilmelidir. Peygamberimize (s.a.v.) bolca salavat getirmek çok faziletlidir.",
		Dhikr:       "Allahümme salli alâ seyyidinâ Muhammedin ve alâ âli seyyidinâ Muhammed",
	},
	"2026-02-02": {
		Title:       "Berat Kandili",
		Description: "Ramazan ayının habercisi, kurtuluş ve bağışlanma gecesi.",
		Advice:      "Bu gece 'Beraat' (kurtuluş) gecesidir. Yüce Allah'tan af dilenmeli, dargınlar barışmalı. Peygamberimiz bu gece 'Allah'ım! Azabından affına, gazabından rızana sığınırım' diye dua ederdi.",
		Dhikr:       "Estağfirullah el-Azîm ve etûbü ileyh",
	},
	"2026-02-19": {
		Title:       "Ramazan Başlangıcı",
		Description: "On bir ayın sultanı Ramazan ayının ilk günü.",
		Advice:      "Oruç ibadetine halis bir niyetle başlanmalı. Teravih namazlarına özen gösterilmeli ve her gün en azından bir miktar Kur'an (mukabele) okunmalıdır.",
		Dhikr:       "Allahümme leke sumtü ve bike âmentü",
	},
	"2026-03-16": {
		Title:       "Kadir Gecesi",
		Description: "Kur'an-ı Kerim'in indirilmeye başlandığı, bin aydan hayırlı gece.",
		Advice:      "Bu gece sabaha kadar ibadetle değerlendirilmelidir. Peygamber Efendimizin Hz. Aişe validemize öğrettiği şu dua çokça okunmalıdır: 'Allah'ım! Sen affedicisin, affı seversin, beni affet.'",
		Dhikr:       "Allahümme inneke afüvvün tuhibbül afve fa'fu annî",
	},
	"2026-03-19": {
		Title:       "Arefe (Ramazan)",
		Description: "Ramazan Bayramı öncesi Arefe günü.",
		Advice:      "Bin İhlas-ı Şerif okumak bugünün önemli adetlerindendir. Kabir ziyaretleri yapılmalı, ölmüşlerimizin ruhuna Fatiha okunmalıdır.",
		Dhikr:       "İhlas Suresi (1000 defa tavsiye edilir)",
	},
	"2026-03-20": {
		Title:       "Ramazan Bayramı (1. Gün)",
		Description: "Ramazan Bayramının 1. Günü. Sevdiklerinizle bayramlaşmayı unutmayın.",
		Advice:      "Sabah bayram namazı kılınmalı. Anne-baba ve akrabalar ziyaret edilmeli, çocuklara hediyeler verilerek sevindirilmelidir. Küsler barışmalıdır.",
		Dhikr:       "Allahü Ekber Allahü Ekber Lâ ilâhe illallahu vallahu ekber",
	},
	"2026-03-21": {
		Title:       "Ramazan Bayramı (2. Gün)",
		Description: "Ramazan Bayramının 2. Günü.",
		Advice:      "Sıla-i rahim (akraba ziyareti) ibadetine devam edilmeli. Hasta ve yaşlılar ziyaret edilerek hayır duaları alınmalıdır.",
		Dhikr:       "Sübhanallahi ve bihamdihi",
	},
	"2026-03-22": {
		Title:       "Ramazan Bayramı (3. Gün)",
		Description: "Ramazan Bayramının 3. ve son günü.",
		Advice:      "Bayramın son gününde de tebessüm sadakasını eksik etmeyin. Fakir ve muhtaçlara yardım elini uzatmaya devam edin.",
		Dhikr:       "Elhamdülillah",
	},
	"2026-05-26": {
		Title:       "Arefe (Kurban)",
		Description: "Kurban Bayramı öncesi Arefe günü.",
		Advice:      "Sabah namazından itibaren 'Teşrik Tekbirleri'ne başlanmalı ve bayramın 4. günü ikindi namazına kadar her farz namazdan sonra getirilmelidir.",
		Dhikr:       "Allâhü ekber, Allâhü ekber, Lâ ilâhe illallâhü vallâhü ekber",
	},
	"2026-05-27": {
		Title:       "Kurban Bayramı (1. Gün)",
		Description: "Kurban Bayramının 1. Günü.",
		Advice:      "Kurban ibadeti yerine getirilmeli. Kurban eti fakirlerle, komşularla ve ev halkıyla paylaşılmalı. Teşrik tekbirleri unutulmamalıdır.",
		Dhikr:       "Teşrik Tekbirleri (Farz namazları sonrası)",
	},
	"2026-05-28": {
		Title:       "Kurban Bayramı (2. Gün)",
		Description: "Kurban Bayramının 2. Günü.",
		Advice:      "Sıla-i rahim ibadetine devam edilmeli, kurban etinden ikramlar sürdürülmelidir.",
		Dhikr:       "Sübhanallahi ve bihamdihi",
	},
	"2026-06-25": {
		Title:       "Hicri Yılbaşı",
		Description: "1448 Hicri yılının ilk günü (1 Muharrem).",
		Advice:      "Yeni hicri yıla dua ile girilmeli, geçen yılın muhasebesi yapılmalıdır.",
		Dhikr:       "Elhamdülillahi alâ külli hâl",
	},
	"2026-07-04": {
		Title:       "Aşure Günü",
		Description: "Muharrem ayının onuncu günü.",
		Advice:      "Bugün oruç tutmak faziletlidir. Aşure pişirilip komşularla paylaşılması güzel bir adettir.",
		Dhikr:       "Estağfirullah el-Azîm",
	},
	"2026-12-18": {
		Title:       "Regaib Kandili",
		Description: "Üç ayların başlangıcını müjdeleyen mübarek gece.",
		Advice:      "Recep ayının ilk cuma gecesidir. Allah'a rağbet etme, O'na yönelme gecesidir. Peygamberimizin duası okunur: 'Allahım! Recep ve Şaban'ı bize mübarek kıl ve bizi Ramazan'a ulaştır.'",
		Dhikr:       "Allahümme bârik lenâ fî Recebe ve Şa'bân ve belliğnâ Ramadân",
	},
}

// FindSpecialDay looks up the entry for a YYYY-MM-DD date.
func FindSpecialDay(date string) (models.SpecialDay, bool) {
	day, ok := SpecialDays[date]
	return day, ok
}

// UpcomingSpecialDays returns dates on or after today, ascending. Dates
// sort correctly as strings in the YYYY-MM-DD format.
func UpcomingSpecialDays(now time.Time) []string {
	today := now.Format(constants.DateFormat)
	var dates []string
	for date := range SpecialDays {
		if date >= today {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
