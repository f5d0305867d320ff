package availability

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// sortSlotsByTime упорядочивает слоты по возрастанию StartTime,
// при равенстве - по EndTime. Сортировка стабильная: полностью одинаковые
// интервалы сохраняют порядок вставки, чтобы вывод был воспроизводим
func sortSlotsByTime(slots []domain.RecurringSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime.IsBefore(slots[j].StartTime)
		}
		return slots[i].EndTime.IsBefore(slots[j].EndTime)
	})
}
