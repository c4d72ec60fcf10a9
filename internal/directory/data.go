package directory

// entries is ordered for display. Aliases only hold spellings that do not
// already match one of the names.
var entries = []Entry{
	{
		Names: Names{EN: "VAT", KA: "დღგ", RU: "НДС"},
		Aliases: []string{
			"value added tax",
			"დამატებული ღირებულების გადასახადი",
			"налог на добавленную стоимость",
		},
		Fee: VAT(),
	},
	{Names: Names{EN: "Ankara Style", KA: "ანკარა სთაილი", RU: "Анкара-Стайл"}, Fee: Ratio(0.15)},
	{Names: Names{EN: "Bernard", KA: "ბერნარდი", RU: "Бернард"}, Fee: Ratio(0.1)},
	{Names: Names{EN: "Brotplatz", KA: "ბროტპლატცი", RU: "Бротплатц"}, Aliases: []string{"Бротплац"}, Fee: Ratio(0.1)},
	{Names: Names{EN: "Cafe Daphna", KA: "კაფე დაფნა", RU: "Кафе Дафна"}, Fee: VAT()},
	{Names: Names{EN: "Dublin", KA: "დუბლინი", RU: "Дублин"}, Fee: VAT()},
	{Names: Names{EN: "Hello Breakfast", RU: "Хеллоу-брэкфаст"}, Aliases: []string{"Хэлоу-брекфаст"}, Fee: VAT()},
	{Names: Names{EN: "Fabrika", KA: "ფაბრიკა", RU: "Фабрика"}, Fee: VAT()},
	{Names: Names{EN: "Good Choice", KA: "გუდ ჩოის", RU: "Гуд-чойс"}, Fee: Ratio(0.1)},
	{Names: Names{EN: "Khinkali House", KA: "ხინკლის სახლი", RU: "Хинкали-хаус"}, Aliases: []string{"Khinkalis Sakhli"}, Fee: Ratio(0.14)},
	{Names: Names{EN: "La Burrata", KA: "ლა ბურრატა", RU: "Ла-Буррата"}, Fee: Ratio(0.1)},
	{Names: Names{EN: "Machakhela Samikitno", KA: "მაჭახელა სამიკიტნო", RU: "Мачахэла-Самикитно"}, Aliases: []string{"Мачахела"}, Fee: Ratio(0.15)},
	{Names: Names{EN: "N1 Steakhouse", KA: "სტეიკჰაუსი#1", RU: "Стэйкхаус №1"}, Aliases: []string{"Стейкхаус №1"}, Fee: VAT()},
	{Names: Names{EN: "Pasanauri", KA: "ფასანაური", RU: "Пасанаури"}, Fee: Ratio(0.1)},
	{Names: Names{EN: "Sabatono", RU: "Сабатоно"}, Fee: Ratio(0.1)},
	{
		Names: Names{
			EN: "Sofia Melnikova's Fantastic Douqan",
			KA: "სოფია მელნიკოვას ფანტასტიური დუქანი",
			RU: "Фантастический дукан Софии Мельниковой",
		},
		Aliases: []string{"Fantastic Doukan", "Fantastic Dukan"},
		Fee:     VAT(),
	},
	{Names: Names{EN: "Cafe Stamba", KA: "კაფე სტამბა", RU: "Кафе Стамба"}, Fee: VAT()},
	{Names: Names{EN: "Tiflisi Vorontsovze", KA: "ტიფლისი ვორონცოვზე", RU: "Тифлиси-Воронцовзе"}, Fee: Ratio(0.15)},
	{Names: Names{EN: "Umami", KA: "უმამი", RU: "Умами"}, Fee: VAT()},
	{Names: Names{EN: "Veliaminov", KA: "ველიამინოვი", RU: "Вельяминов"}, Fee: Ratio(0.1)},
	{Names: Names{EN: "Zodiaqo", KA: "ზოდიაქო", RU: "Зодиако"}, Fee: Ratio(0.1)},
}

// Entries returns a copy of the directory in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
