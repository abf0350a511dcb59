package report

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English format strings.
const (
	msgTitle        = "Birch pollen statistics for %s in %s:"
	msgNoStatistics = "No birch pollen statistics for %s"
	msgBlossom      = "(%d) Blossom lasted %d days. Start: %s[%d] End: %s[%s]"
	msgPeak         = "(%d) Peak: %s [%d]"
	msgTotal        = "(%d) Total grains: %d"
	msgLevelsHeader = "(%d) Days by pollen concentration level:"
	msgLevel        = "    [Pollen level %s : (%s - %s)]"
	msgLevelDays    = "    Days: %d (%s)"
	msgLevelStats   = "    Level statistics: total grains = %d, share of season = %.4f, mean = %.2f"
	msgUnknownLevel = "    [Pollen level unknown: ???]"
	msgNotCounted   = "    Days without measurement but with pollen activity: %d (%s)"
	msgNoData       = "NO DATA"
	msgDayAmount    = "%s[%d]"
	msgWeekdayDate  = "%s(%s)"
)

var russian = map[string]string{
	msgTitle:        "Статистика по пыльце берёзы в %s в %s году:",
	msgNoStatistics: "Статистики по пыльце берёзы в %s нет",
	msgBlossom:      "(%d) Цветение продолжалось дней: %d. Начало: %s[%d] Окончание: %s[%s]",
	msgPeak:         "(%d) Пиковый показатель: %s [%d]",
	msgTotal:        "(%d) Суммарное количество зёрен: %d",
	msgLevelsHeader: "(%d) Дни по уровням концентрации пыльцы:",
	msgLevel:        "    [Уровень пыльцы %s : (%s - %s)]",
	msgLevelDays:    "    Дней: %d (%s)",
	msgLevelStats:   "    Статистика уровня: суммарное количество зёрен пыльцы = %d, доля в общем объёме = %.4f, среднее значение = %.2f",
	msgUnknownLevel: "    [Уровень пыльцы неизвестен: ???]",
	msgNotCounted:   "    Дней (когда не было измерений, но происходило пыление): %d (%s)",
	msgNoData:       "НЕТ ДАННЫХ",
}

// calendar holds the month and weekday labels of one language.
type calendar struct {
	months   [12]string
	weekdays [7]string // indexed by time.Weekday, Sunday first
}

func (c calendar) month(m time.Month) string { return c.months[m-1] }
func (c calendar) weekday(d time.Weekday) string { return c.weekdays[d] }

// supported is ordered by preference; the first entry is the fallback.
var supported = []struct {
	tag      language.Tag
	calendar calendar
}{
	{
		tag: language.Russian,
		calendar: calendar{
			months:   [12]string{"янв", "фев", "мар", "апр", "мая", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
			weekdays: [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		},
	},
	{
		tag: language.English,
		calendar: calendar{
			months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		},
	},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	matcher = language.NewMatcher(tags)

	for key, msg := range russian {
		mustSet(language.Russian, key, msg)
		mustSet(language.English, key, key)
	}
}

func mustSet(tag language.Tag, key, msg string) {
	if err := message.SetString(tag, key, msg); err != nil {
		panic(err)
	}
}
