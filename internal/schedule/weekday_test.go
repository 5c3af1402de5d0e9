package schedule

import (
	"testing"
	"time"
)

func TestOrdinal(t *testing.T) {
	cases := []struct {
		weekday string
		want    int
	}{
		{SegundaFeira, 0},
		{TercaFeira, 1},
		{QuartaFeira, 2},
		{QuintaFeira, 3},
		{SextaFeira, 4},
		{Sabado, 5},
		{Domingo, 6},
	}

	for _, c := range cases {
		got, verr := Ordinal(c.weekday)
		if verr != nil {
			t.Fatalf("Ordinal(%q) falhou: %v", c.weekday, verr)
		}
		if got != c.want {
			t.Errorf("Ordinal(%q): esperado %d, obtido %d", c.weekday, c.want, got)
		}
	}
}

func TestOrdinal_InvalidWeekday(t *testing.T) {
	// Comparação exata: variações de caixa ou rótulos estrangeiros não valem
	for _, weekday := range []string{"segunda-feira", "Segunda", "Monday", "", "Sábado "} {
		_, verr := Ordinal(weekday)
		if verr == nil {
			t.Errorf("Ordinal(%q): esperado erro", weekday)
			continue
		}
		if verr.Kind != KindInvalidWeekday {
			t.Errorf("Ordinal(%q): esperado KindInvalidWeekday, obtido %s", weekday, verr.Kind)
		}
	}
}

// quarta 15 de abril de 2026, 14:30 em horário local
var referenceWednesday = time.Date(2026, 4, 15, 14, 30, 0, 0, time.Local)

func TestIsUpcoming(t *testing.T) {
	cases := []struct {
		name    string
		weekday string
		start   string
		end     string
		want    bool
	}{
		{"dia posterior na semana", QuintaFeira, "08:00", "10:00", true},
		{"dia anterior na semana", SegundaFeira, "08:00", "10:00", false},
		{"hoje, ainda nao terminou", QuartaFeira, "14:00", "16:00", true},
		{"hoje, ja terminou", QuartaFeira, "08:00", "10:00", false},
		{"domingo sempre a frente de quarta", Domingo, "06:00", "07:00", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, verr := IsUpcoming(c.weekday, c.start, c.end, referenceWednesday)
			if verr != nil {
				t.Fatalf("IsUpcoming falhou: %v", verr)
			}
			if got != c.want {
				t.Errorf("esperado %v, obtido %v", c.want, got)
			}
		})
	}
}

func TestIsUpcoming_EndEqualsNow(t *testing.T) {
	// Fim exatamente igual ao agora conta como já ocorrido
	got, verr := IsUpcoming(QuartaFeira, "12:30", "14:30", referenceWednesday)
	if verr != nil {
		t.Fatalf("IsUpcoming falhou: %v", verr)
	}
	if got {
		t.Error("horário terminando exatamente agora deveria contar como ocorrido")
	}
}

func TestIsUpcoming_InvalidWeekday(t *testing.T) {
	_, verr := IsUpcoming("Quarta", "08:00", "10:00", referenceWednesday)
	if verr == nil || verr.Kind != KindInvalidWeekday {
		t.Errorf("esperado KindInvalidWeekday, obtido %v", verr)
	}
}
