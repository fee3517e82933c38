package sim

import (
	"fmt"
	"io"
	"time"
)

// Report — итоговая статистика симуляции
type Report struct {
	RunID        string
	Steps        uint64
	Elapsed      time.Duration
	RegistrySize int
	MapSize      int
	MarkedCells  int
	RSSBytes     uint64
}

// Print выводит отчёт в формате исходной утилиты
func (r *Report) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"this took %d seconds\nregistry used: %d\nmap used: %d\nblack tiles: %d\n",
		int64(r.Elapsed/time.Second), r.RegistrySize, r.MapSize, r.MarkedCells,
	)
	return err
}
