package template_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/popeskul/disparo-queue/internal/template"
)

// 2025-03-11 is a Tuesday.
func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 11, hour, minute, 0, 0, time.UTC)
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{name: "midnight", at: at(0, 0), expected: "Boa noite"},
		{name: "before dawn", at: at(4, 59), expected: "Boa noite"},
		{name: "morning starts", at: at(5, 0), expected: "Bom dia"},
		{name: "last morning minute", at: at(11, 59), expected: "Bom dia"},
		{name: "noon", at: at(12, 0), expected: "Boa tarde"},
		{name: "last afternoon minute", at: at(17, 59), expected: "Boa tarde"},
		{name: "evening", at: at(18, 0), expected: "Boa noite"},
		{name: "late night", at: at(23, 59), expected: "Boa noite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, template.Greeting(tt.at))
		})
	}
}

func TestGreeting_AlwaysOneOfThree(t *testing.T) {
	allowed := map[string]bool{"Bom dia": true, "Boa tarde": true, "Boa noite": true}
	for minute := 0; minute < 24*60; minute++ {
		g := template.Greeting(at(minute/60, minute%60))
		assert.True(t, allowed[g], "unexpected greeting %q at minute %d", g, minute)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		vars     template.Vars
		expected string
	}{
		{
			name:     "greeting name and weekday",
			body:     "<saudacao> <nome>, hoje é <diadasemana>",
			vars:     template.Vars{Name: "Ana", Now: at(14, 0)},
			expected: "Boa tarde Ana, hoje é Terça-feira",
		},
		{
			name:     "accented aliases",
			body:     "<saudação>! Ofertas de <mês>",
			vars:     template.Vars{Now: at(9, 30)},
			expected: "Bom dia! Ofertas de Março",
		},
		{
			name:     "date and time",
			body:     "Enviado em <data> às <hora> (<mes>)",
			vars:     template.Vars{Now: at(8, 5)},
			expected: "Enviado em 11/03/2025 às 08:05 (Março)",
		},
		{
			name:     "case insensitive tokens",
			body:     "<SAUDACAO> <Nome> <DiaDaSemana>",
			vars:     template.Vars{Name: "Bruno", Now: at(20, 0)},
			expected: "Boa noite Bruno Terça-feira",
		},
		{
			name:     "missing name renders empty",
			body:     "Olá <nome>!",
			vars:     template.Vars{Now: at(10, 0)},
			expected: "Olá !",
		},
		{
			name: "custom attributes match case insensitively",
			body: "Sua loja em <Cidade> tem <desconto>% e pedido <PEDIDO>",
			vars: template.Vars{
				Now:        at(10, 0),
				Attributes: map[string]any{"cidade": "Recife", "Desconto": float64(15), "pedido": float64(5511999999999)},
			},
			expected: "Sua loja em Recife tem 15% e pedido 5511999999999",
		},
		{
			name: "built-ins win over attributes",
			body: "<nome>",
			vars: template.Vars{
				Name:       "Carla",
				Attributes: map[string]any{"nome": "outro"},
			},
			expected: "Carla",
		},
		{
			name:     "unknown placeholders stay verbatim",
			body:     "Código <cupom> para <nome> <x y>",
			vars:     template.Vars{Name: "Davi", Attributes: map[string]any{"cidade": "Natal"}},
			expected: "Código <cupom> para Davi <x y>",
		},
		{
			name:     "every occurrence replaced",
			body:     "<nome>, <nome>, <nome>",
			vars:     template.Vars{Name: "Eva"},
			expected: "Eva, Eva, Eva",
		},
		{
			name:     "no placeholders",
			body:     "Promoção relâmpago",
			vars:     template.Vars{Name: "Eva"},
			expected: "Promoção relâmpago",
		},
		{
			name: "non string attribute values",
			body: "<vip> <tags> <nada>",
			vars: template.Vars{Attributes: map[string]any{
				"vip":  true,
				"tags": []any{"a", "b"},
				"nada": nil,
			}},
			expected: `true ["a","b"] `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, template.Render(tt.body, tt.vars))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	vars := template.Vars{Name: "Ana", Now: at(7, 0), Attributes: map[string]any{"plano": "ouro"}}
	body := "<saudacao> <nome> <plano> <desconhecido>"
	first := template.Render(body, vars)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, template.Render(body, vars))
	}
}
