// Package template renders disparo message bodies by substituting <token>
// placeholders with recipient and clock values.
//
// Built-in tokens are matched case-insensitively:
//
//	<saudacao>, <saudação>   Bom dia / Boa tarde / Boa noite
//	<nome>                   recipient display name
//	<data>                   dd/mm/yyyy
//	<hora>                   HH:MM
//	<diadasemana>            weekday name, e.g. Terça-feira
//	<mes>, <mês>             month name, e.g. Março
//
// Any other token is looked up in the recipient attributes, again ignoring
// case. Tokens that resolve to nothing are left untouched.
package template

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var placeholderPattern = regexp.MustCompile(`<([^<>]+)>`)

var weekdays = [...]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

var months = [...]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// Vars are the runtime values available to a template. Now must already be
// in the timezone the greeting and date should reflect.
type Vars struct {
	Name       string
	Attributes map[string]any
	Now        time.Time
}

// Render substitutes every recognised placeholder in body.
func Render(body string, vars Vars) string {
	if !strings.Contains(body, "<") {
		return body
	}

	attrs := make(map[string]string, len(vars.Attributes))
	for k, v := range vars.Attributes {
		attrs[strings.ToLower(k)] = stringify(v)
	}

	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		token := strings.ToLower(match[1 : len(match)-1])
		if value, ok := builtin(token, vars); ok {
			return value
		}
		if value, ok := attrs[token]; ok {
			return value
		}
		return match
	})
}

func builtin(token string, vars Vars) (string, bool) {
	switch token {
	case "saudacao", "saudação":
		return Greeting(vars.Now), true
	case "nome":
		return vars.Name, true
	case "data":
		return vars.Now.Format("02/01/2006"), true
	case "hora":
		return vars.Now.Format("15:04"), true
	case "diadasemana":
		return weekdays[vars.Now.Weekday()], true
	case "mes", "mês":
		return months[vars.Now.Month()], true
	}
	return "", false
}

// Greeting returns the time-of-day salutation: "Bom dia" from 05:00 to 11:59,
// "Boa tarde" from 12:00 to 17:59 and "Boa noite" otherwise.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Bom dia"
	case h >= 12 && h < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}
