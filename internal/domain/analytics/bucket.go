package analytics

import (
	"fmt"
	"time"
)

// Granularity resolução dos buckets da série.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// monthAbbr abreviações pt-BR usadas nos rótulos mensais (Mon/YY).
// Tabela única compartilhada — não redeclarar por chamador.
var monthAbbr = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// GranularityFor granularidade implícita de cada preset: diária apenas
// para mês atual, mês anterior e custom; mensal para o resto.
func GranularityFor(token PeriodToken) Granularity {
	switch token {
	case PeriodThisMonth, PeriodLastMonth, PeriodCustom:
		return GranularityDaily
	default:
		return GranularityMonthly
	}
}

// Bucketer gera a sequência de rótulos de um intervalo e calcula o rótulo
// de uma data individual com as mesmas regras de desambiguação de ano,
// garantindo que registro e bucket usem exatamente a mesma chave.
type Bucketer struct {
	Range       DateRange
	Granularity Granularity
	withYear    bool // sufixo /YY nos rótulos diários
}

// NewBucketer monta o bucketer do intervalo. forceYear liga o sufixo de
// ano mesmo quando o intervalo não cruza a virada (períodos custom, que
// podem cruzar anos silenciosamente).
func NewBucketer(r DateRange, g Granularity, forceYear bool) Bucketer {
	return Bucketer{
		Range:       r,
		Granularity: g,
		withYear:    forceYear || r.Start.Year() != r.End.Year(),
	}
}

// Key rótulo do bucket que contém t.
func (b Bucketer) Key(t time.Time) string {
	if b.Granularity == GranularityMonthly {
		return monthlyKey(t)
	}
	return dailyKey(t, b.withYear)
}

// Keys sequência de rótulos do intervalo: estritamente cronológica,
// contígua (um por dia/mês de calendário) e sem duplicatas, independente
// de onde Start/End caem dentro do dia ou do mês.
func (b Bucketer) Keys() []string {
	var keys []string
	if b.Granularity == GranularityMonthly {
		for cur := firstOfMonth(b.Range.Start); !cur.After(b.Range.End); cur = cur.AddDate(0, 1, 0) {
			keys = append(keys, monthlyKey(cur))
		}
		return keys
	}
	for cur := midnight(b.Range.Start); !cur.After(b.Range.End); cur = cur.AddDate(0, 0, 1) {
		keys = append(keys, dailyKey(cur, b.withYear))
	}
	return keys
}

// dailyKey "DD/MM", ou "DD/MM/YY" quando o ano precisa ser desambiguado.
func dailyKey(t time.Time, withYear bool) string {
	if withYear {
		return fmt.Sprintf("%02d/%02d/%02d", t.Day(), int(t.Month()), t.Year()%100)
	}
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}

// monthlyKey "Mon/YY" com a tabela pt-BR.
func monthlyKey(t time.Time) string {
	return fmt.Sprintf("%s/%02d", monthAbbr[int(t.Month())-1], t.Year()%100)
}
