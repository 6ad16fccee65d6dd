package schedule

// Passo fixo entre candidatos, em minutos.
const SlotStride = 30

// BookedInterval é a janela ocupada por um agendamento existente, em minutos
// desde a meia-noite da data consultada. A lista já vem filtrada para os
// status que bloqueiam agenda (PENDING/CONFIRMED).
type BookedInterval struct {
	Start int
	End   int
}

// GenerateSlots produz os horários de início ofertáveis dentro do intervalo
// aberto, em ordem crescente. Um candidato só entra se o atendimento couber
// inteiro antes do fechamento e não sobrepor nenhum agendamento existente.
// Recalculado a cada chamada; O(slots × agendamentos).
func GenerateSlots(interval OpenInterval, durationMin int, busy []BookedInterval) []string {
	if interval.Closed {
		return []string{}
	}

	start := ToMinutes(interval.StartTime)
	end := ToMinutes(interval.EndTime)

	slots := []string{}

	for cur := start; cur+durationMin <= end; cur += SlotStride {
		slotEnd := cur + durationMin

		conflict := false
		for _, b := range busy {
			if Overlaps(cur, slotEnd, b.Start, b.End) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, FormatMinutes(cur))
		}
	}

	return slots
}
