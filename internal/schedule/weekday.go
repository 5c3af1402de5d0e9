package schedule

import "time"

// Rótulos canônicos dos dias da semana (comparação exata, sem normalização)
const (
	SegundaFeira = "Segunda-feira"
	TercaFeira   = "Terça-feira"
	QuartaFeira  = "Quarta-feira"
	QuintaFeira  = "Quinta-feira"
	SextaFeira   = "Sexta-feira"
	Sabado       = "Sábado"
	Domingo      = "Domingo"
)

// weekdayOrdinals mapeia o rótulo do dia para o ordinal (Segunda=0 .. Domingo=6)
var weekdayOrdinals = map[string]int{
	SegundaFeira: 0,
	TercaFeira:   1,
	QuartaFeira:  2,
	QuintaFeira:  3,
	SextaFeira:   4,
	Sabado:       5,
	Domingo:      6,
}

// Weekdays rótulos canônicos em ordem (Segunda → Domingo)
var Weekdays = []string{
	SegundaFeira, TercaFeira, QuartaFeira, QuintaFeira, SextaFeira, Sabado, Domingo,
}

// Ordinal devolve o ordinal do dia da semana (Segunda=0 .. Domingo=6).
// Rótulo desconhecido resulta em erro InvalidWeekday.
func Ordinal(weekday string) (int, *ValidationError) {
	ord, ok := weekdayOrdinals[weekday]
	if !ok {
		return 0, invalidWeekday(weekday)
	}
	return ord, nil
}

// todayOrdinal converte time.Weekday (Domingo=0) para o ordinal local (Segunda=0)
func todayOrdinal(now time.Time) int {
	return (int(now.Weekday()) + 6) % 7
}

// IsUpcoming informa se a ocorrência do horário nesta semana ainda está por vir
// em relação a referenceNow.
//
// Verdadeiro quando o dia do horário é posterior ao dia atual no ciclo semanal,
// ou quando é o dia atual e o fim do horário é estritamente posterior à hora
// corrente. O ciclo é ancorado na semana atual: um dia já passado nesta semana
// conta como ocorrido, mesmo que o horário recorra na semana seguinte.
func IsUpcoming(weekday, startTime, endTime string, referenceNow time.Time) (bool, *ValidationError) {
	ord, verr := Ordinal(weekday)
	if verr != nil {
		return false, verr
	}

	today := todayOrdinal(referenceNow)
	if ord < today {
		return false, nil
	}
	if ord == today {
		// Fim exatamente igual ao agora conta como já ocorrido
		return endTime > referenceNow.Format("15:04"), nil
	}
	return true, nil
}
