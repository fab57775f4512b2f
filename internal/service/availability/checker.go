package availability

import (
	"github.com/kly4ev/SDA-BookingService/internal/domain"
)

// Check проверяет, можно ли разместить окно window в расписании дня
// с учетом существующих бронирований ресурса.
//
// Функция чистая и идемпотентная: повторный вызов с теми же данными даёт
// тот же результат. Сама по себе проверка ничего не гарантирует — перед
// записью она выполняется повторно внутри сериализуемой транзакции,
// потому что между проверкой и записью проходит время.
//
// Порядок проверок:
//  1. Салон закрыт в этот день → OutsideOperatingHours
//  2. Окно не помещается в рабочие часы → OutsideOperatingHours
//     (окно, заканчивающееся ровно в закрытие, помещается)
//  3. Пересечение с любым активным бронированием → SlotTaken
//     (отменённые бронирования слот не занимают, границы интервалов
//     не считаются пересечением)
func Check(schedule domain.DaySchedule, window domain.TimeWindow, appointments []*domain.Appointment) Decision {
	if schedule.Closed() {
		return Unavailable(ReasonOutsideOperatingHours)
	}

	if !window.FitsWithin(schedule.OpenTime, schedule.CloseTime) {
		return Unavailable(ReasonOutsideOperatingHours)
	}

	for _, appt := range appointments {
		if !appt.Blocks() {
			continue
		}

		apptWindow, err := appt.Window()
		if err != nil {
			// Бронирование с некорректным временем не может служить препятствием
			continue
		}

		if window.Overlaps(apptWindow) {
			return Unavailable(ReasonSlotTaken)
		}
	}

	return Ok()
}
