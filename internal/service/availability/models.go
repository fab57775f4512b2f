package availability

// Reason причина недоступности слота
type Reason string

const (
	// ReasonOutsideOperatingHours окно выходит за рабочие часы салона (или салон закрыт)
	ReasonOutsideOperatingHours Reason = "outside_operating_hours"

	// ReasonSlotTaken окно пересекается с существующим активным бронированием
	ReasonSlotTaken Reason = "slot_taken"
)

// Decision результат проверки доступности
// Бизнес-ответ "нет" — это значение, а не ошибка
type Decision struct {
	Available bool
	Reason    Reason
}

// Ok решение "слот доступен"
func Ok() Decision {
	return Decision{Available: true}
}

// Unavailable решение "слот недоступен" с причиной
func Unavailable(reason Reason) Decision {
	return Decision{Available: false, Reason: reason}
}
