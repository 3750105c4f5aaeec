package registry

import "zikirmatik/internal/models"

// ZikhrItems is the built-in zikhr registry. Entries are immutable for
// the life of the process; user-created items layer on top of this list.
var ZikhrItems = []models.ZikhrItem{
	{
		Name:        "Subhanallah",
		ArabicName:  "سبحان الله",
		Description: "Subhanallah, Allah'ın her türlü eksiklikten münezzeh olduğunu hatırlamak için söylenir.",
		Count:       99,
	},
	{
		Name:        "Elhamdülillah",
		ArabicName:  "الحمد لله",
		Description: "Elhamdülillah, tüm övgülerin yalnızca Allah'a ait olduğunu kalpte tazelemek için söylenir.",
		Count:       99,
	},
	{
		Name:        "Allahu Ekber",
		ArabicName:  "الله أكبر",
		Description: "Allahu Ekber, Allah'ın en yüce olduğunu idrak etmek ve kalbi diriltmek için söylenir.",
		Count:       99,
	},
	{
		Name:        "La ilahe illallah",
		ArabicName:  "لا إله إلا الله",
		Description: "Kelime-i Tevhid; Allah'tan başka ilah olmadığını ikrar etmek ve imanı tazelemek için söylenir.",
		Count:       100,
	},
	{
		Name:        "Estağfirullah",
		ArabicName:  "أستغفر الله",
		Description: "İstiğfar; günahlardan pişmanlık duyup Allah'tan bağışlanma dilemek ve manevi arınma için söylenir.",
		Count:       100,
	},
	{
		Name:        "Allahümme Salli Ala Seyyidina Muhammed",
		ArabicName:  "اللهم صل على سيدنا محمد",
		Description: "Salavat; Peygamber Efendimiz'e (s.a.v.) selam göndermek ve şefaatine nail olmak ümidiyle söylenir.",
		Count:       100,
	},
	{
		Name:        "La havle ve la kuvvete illa billah",
		ArabicName:  "لا حول ولا قوة إلا بالله",
		Description: "Güç ve kuvvetin yalnız Allah'tan geldiğini hatırlatır; sıkıntı anlarında huzur verir.",
		Count:       100,
	},
	{
		Name:        "Subhanallahi ve bihamdihi",
		ArabicName:  "سبحان الله وبحمده",
		Description: "Dile hafif ama mizanda (sevap tartısında) ağır gelen, Allah'ı hamd ile tesbih eden faziletli bir zikirdir.",
		Count:       100,
	},
	{
		Name:        "Hasbunallahu ve ni'mel vekil",
		ArabicName:  "حسبنا الله ونعم الوكيل",
		Description: "Allah bize yeter, O ne güzel vekildir. Zorluk anlarında Allah'a tam teslimiyet ve güveni ifade eder.",
		Count:       100,
	},
	{
		Name:        "Ya Hayyu Ya Kayyum",
		ArabicName:  "يا حي يا قيوم",
		Description: "Ey daima diri olan (Hayy) ve her şeyi ayakta tutan (Kayyum) Allah'ım. Esma-ül Hüsna zikirlerinden.",
		Count:       99,
	},
}

// DefaultZikhr is selected when no snapshot resolves at startup.
var DefaultZikhr = ZikhrItems[0]

// FindZikhr looks up a built-in item by name.
func FindZikhr(name string) (models.ZikhrItem, bool) {
	for _, item := range ZikhrItems {
		if item.Name == name {
			return item, true
		}
	}
	return models.ZikhrItem{}, false
}

// IsBuiltin reports whether name belongs to the static registry. Built-in
// items cannot be deleted, only overridden.
func IsBuiltin(name string) bool {
	_, ok := FindZikhr(name)
	return ok
}
