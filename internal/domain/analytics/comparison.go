package analytics

import (
	"time"

	"github.com/autorevenda/gestor-api/internal/domain/entity"
)

// PreviousRange período imediatamente anterior, de comprimento igual ao
// corrente na granularidade ativa:
//
//   - diária: mesmo número de dias, terminando na véspera de Start;
//   - mensal: mesmo número de meses, terminando no mês anterior ao mês
//     de Start (dia 1 ao último dia, independente de onde Start/End caem).
func PreviousRange(r DateRange, g Granularity) DateRange {
	if g == GranularityMonthly {
		months := (r.End.Year()-r.Start.Year())*12 + int(r.End.Month()) - int(r.Start.Month()) + 1
		prevEnd := firstOfMonth(r.Start).AddDate(0, 0, -1) // último dia do mês anterior
		prevStart := firstOfMonth(prevEnd).AddDate(0, -(months - 1), 0)
		return DateRange{Start: prevStart, End: lastOfMonth(prevEnd)}
	}
	days := daySpan(r)
	prevEnd := r.Start.AddDate(0, 0, -1)
	return DateRange{Start: prevEnd.AddDate(0, 0, -(days - 1)), End: prevEnd}
}

// daySpan número de dias de calendário do intervalo inclusivo. Conta por
// data UTC para não depender de transições de horário de verão.
func daySpan(r DateRange) int {
	return int(utcDate(r.End).Sub(utcDate(r.Start)).Hours()/24) + 1
}

func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildComparison agrega o período anterior com os mesmos filtros
// não temporais do corrente. Os rótulos do período anterior são gerados
// com desambiguação de ano própria (o intervalo anterior pode cruzar a
// virada de ano mesmo quando o corrente não cruza).
//
// O alinhamento com a série corrente é posicional: o bucket i do período
// anterior sobrepõe o bucket i do corrente, sem correspondência de
// calendário. Contrato preservado da implementação de referência.
func BuildComparison(sales []entity.Sale, expenses []entity.OperatingExpense, f Filter, cur Bucketer, forceYear bool) []Bucket {
	prev := PreviousRange(cur.Range, cur.Granularity)
	f.Range = prev
	filtered := ApplyFilter(sales, f)
	return Aggregate(filtered, expenses, NewBucketer(prev, cur.Granularity, forceYear))
}
