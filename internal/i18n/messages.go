package i18n

// Message keys used outside this package.
const (
	KeyTitle                     = "title"
	KeyPrice                     = "price"
	KeyIntro                     = "intro"
	KeyLanguages                 = "languages"
	KeyReportLink                = "reportLink"
	KeyAddItemButton             = "addItemButton"
	KeyFormFooterClearButton     = "formFooterClearButton"
	KeyFormFooterClearDialog     = "formFooterClearDialog"
	KeyFormFooterSum             = "formFooterSum"
	KeyItemInputLabel            = "itemInputLabel"
	KeyItemInputPrice            = "itemInputPrice"
	KeyItemInputRemove           = "itemInputRemove"
	KeySearchInputButton         = "searchInputButton"
	KeySearchInputInvalid        = "searchInputInvalid"
	KeySearchInputLabel          = "searchInputLabel"
	KeySearchInputListboxHint    = "searchInputListboxHint"
	KeySearchInputListboxResults = "searchInputListboxResults"
	KeySearchInputListboxChosen  = "searchInputListboxSelected"
	KeySearchVat                 = "searchVat"
)

var messages = map[string]map[Lang]string{
	KeyTitle: {
		English:  "feefeefee",
		Georgian: "ფიფიფი",
		Russian:  "фифифи",
	},
	KeyPrice: {
		English:  "₾$1",
		Georgian: "$1 ₾",
		Russian:  "$1 ₾",
	},
	KeyIntro: {
		English: "Calculate real prices in Georgian restaurants, with service fees included. Sometimes bills can be slightly different.",
		Russian: "Считайте реальные цены (с обслуживанием) в грузинских ресторанах. Иногда счёт может немного отличаться.",
	},
	KeyLanguages: {
		English:  "Languages",
		Georgian: "ენები",
		Russian:  "Языки",
	},
	KeyReportLink: {
		English: "Add a place / Report an error",
		Russian: "Добавить место / Написать об ошибке",
	},
	KeyAddItemButton: {
		English:  "Add item",
		Georgian: "დამატება",
		Russian:  "Добавить ещё",
	},
	KeyFormFooterClearButton: {
		English:  "Clear data",
		Georgian: "გასუფთავება",
		Russian:  "Очистить форму",
	},
	KeyFormFooterClearDialog: {
		English: "You are about to clear all the form data. Continue?",
		Russian: "Вы очистите все данные формы. Продолжить?",
	},
	KeyFormFooterSum: {
		English:  "Sum:",
		Georgian: "თანხა:",
		Russian:  "Сумма:",
	},
	KeyItemInputLabel: {
		English:  "Price in the menu",
		Georgian: "ფასი მენიუში",
		Russian:  "Цена в меню",
	},
	KeyItemInputPrice: {
		English:  "Real price:",
		Georgian: "რეალური ფასი:",
		Russian:  "Настоящая цена:",
	},
	KeyItemInputRemove: {
		English:  "Remove",
		Georgian: "წაშლა",
		Russian:  "Удалить",
	},
	KeySearchInputButton: {
		English:  "Search",
		Georgian: "ძიება",
		Russian:  "Искать",
	},
	KeySearchInputInvalid: {
		English: "What you entered ($1) is not a number or a valid cafe.",
		Russian: "Введённое вами ($1) не является числом или известным нам кафе.",
	},
	KeySearchInputLabel: {
		English: "Enter a place or percentage",
		Russian: "Введите место или процент",
	},
	KeySearchInputListboxHint: {
		English: "When autocomplete results are available use up and down arrows to review and enter to select. Touch device users, explore by touch or with swipe gestures.",
		Russian: "Когда доступны результаты поиска, используйте стрелки вверх/вниз для навигации по ним и клавишу ввода для выбора. Пользователи тач-устройств могут навигировать жестами касаний или свайпа.",
	},
	KeySearchInputListboxResults: {
		English: "$1 results are available. $2",
		Russian: "Доступно $1 результат(а/ов). $2",
	},
	KeySearchInputListboxChosen: {
		English: "$1 ($3) of $2 is highlighted.",
		Russian: "$1 ($3) из $2 подсвечена.",
	},
	KeySearchVat: {
		English:  "VAT/$1",
		Georgian: "დღგ/$1",
		Russian:  "НДС/$1",
	},
}
