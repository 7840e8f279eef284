// Package analytics implementa o motor de séries temporais de vendas:
// resolução de período, geração de buckets, filtros, agregação, métricas
// derivadas e comparação com o período anterior. Todo o pacote é puro e
// stateless — recalcula tudo a partir das entradas a cada chamada, sem
// I/O e sem estado compartilhado.
package analytics

import (
	"time"

	"github.com/autorevenda/gestor-api/internal/domain/entity"
)

// PeriodToken preset de período escolhido pelo usuário.
type PeriodToken string

const (
	PeriodThisMonth   PeriodToken = "this_month"
	PeriodLastMonth   PeriodToken = "last_month"
	PeriodThisQuarter PeriodToken = "this_quarter"
	PeriodThisYear    PeriodToken = "this_year"
	PeriodLast3       PeriodToken = "last_3"
	PeriodLast6       PeriodToken = "last_6"
	PeriodLast12      PeriodToken = "last_12"
	PeriodAll         PeriodToken = "all"
	PeriodCustom      PeriodToken = "custom"
)

// DateRange intervalo inclusivo [Start, End], ambos normalizados para a
// meia-noite local.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains verifica se t (já normalizado) cai dentro do intervalo.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// PeriodInput token + limites literais do período custom.
type PeriodInput struct {
	Token       PeriodToken
	CustomStart string // YYYY-MM-DD; vazio ou inválido → 1º dia do mês atual
	CustomEnd   string // YYYY-MM-DD; vazio ou inválido → último dia do mês atual
}

// dateLayout formato literal usado pelo backend gerenciado.
const dateLayout = "2006-01-02"

// ParseDate converte a string literal de data em time.Time normalizado.
// Aceita YYYY-MM-DD e, por tolerância, timestamps RFC3339 (o backend já
// gravou ambos os formatos). Datas não parseáveis retornam ok=false e o
// chamador deve tratá-las como "fora de qualquer período".
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return midnight(t.Local()), true
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func lastOfMonth(t time.Time) time.Time {
	return firstOfMonth(t).AddDate(0, 1, -1)
}

// monthRange [1º, último dia] do mês que contém t.
func monthRange(t time.Time) DateRange {
	return DateRange{Start: firstOfMonth(t), End: lastOfMonth(t)}
}

// lastNMonthsRange [1º dia de (n-1) meses atrás, último dia do mês atual].
func lastNMonthsRange(now time.Time, n int) DateRange {
	return DateRange{
		Start: firstOfMonth(now).AddDate(0, -(n - 1), 0),
		End:   lastOfMonth(now),
	}
}

// presetRanges tabela de despacho token → resolução de intervalo.
// PeriodAll e PeriodCustom ficam fora: precisam de entradas extras
// (datas das vendas / limites literais) e são tratados em ResolvePeriod.
var presetRanges = map[PeriodToken]func(now time.Time) DateRange{
	PeriodThisMonth: monthRange,
	PeriodLastMonth: func(now time.Time) DateRange {
		return monthRange(firstOfMonth(now).AddDate(0, -1, 0))
	},
	PeriodThisQuarter: func(now time.Time) DateRange {
		q := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: start.AddDate(0, 3, -1)}
	},
	PeriodThisYear: func(now time.Time) DateRange {
		return DateRange{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()),
		}
	},
	PeriodLast3:  func(now time.Time) DateRange { return lastNMonthsRange(now, 3) },
	PeriodLast6:  func(now time.Time) DateRange { return lastNMonthsRange(now, 6) },
	PeriodLast12: func(now time.Time) DateRange { return lastNMonthsRange(now, 12) },
}

// ValidToken reporta se o token é um preset conhecido (inclui all/custom).
func ValidToken(t PeriodToken) bool {
	if _, ok := presetRanges[t]; ok {
		return true
	}
	return t == PeriodAll || t == PeriodCustom
}

// ResolvePeriod resolve o token em um intervalo inclusivo concreto.
//
//   - presets de calendário: tabela presetRanges
//   - all: min/max das datas de venda parseáveis; sem vendas → mês atual
//   - custom: limites literais com fallback por campo (um limite ausente ou
//     malformado cai no equivalente do mês atual, sem afetar o outro)
//
// Nunca retorna erro: entrada degenerada sempre degrada para o mês atual.
func ResolvePeriod(in PeriodInput, now time.Time, sales []entity.Sale) DateRange {
	now = midnight(now)

	if resolve, ok := presetRanges[in.Token]; ok {
		return resolve(now)
	}

	switch in.Token {
	case PeriodAll:
		return allSalesRange(now, sales)
	case PeriodCustom:
		return customRange(in, now)
	default:
		// Token desconhecido chega aqui apenas se o chamador pulou a
		// validação; degrada para o mês atual como no custom vazio.
		return monthRange(now)
	}
}

func allSalesRange(now time.Time, sales []entity.Sale) DateRange {
	var min, max time.Time
	for _, s := range sales {
		t, ok := ParseDate(s.SoldDate)
		if !ok {
			continue
		}
		if min.IsZero() || t.Before(min) {
			min = t
		}
		if max.IsZero() || t.After(max) {
			max = t
		}
	}
	if min.IsZero() {
		return monthRange(now)
	}
	return DateRange{Start: min, End: max}
}

func customRange(in PeriodInput, now time.Time) DateRange {
	start, ok := ParseDate(in.CustomStart)
	if !ok {
		start = firstOfMonth(now)
	}
	end, ok := ParseDate(in.CustomEnd)
	if !ok {
		end = lastOfMonth(now)
	}
	return DateRange{Start: start, End: end}
}
