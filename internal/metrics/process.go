package metrics

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats содержит показатели текущего процесса
type ProcessStats struct {
	RSSBytes   uint64
	CPUPercent float64
	HeapBytes  uint64
	NumGC      uint32
}

// SampleProcess снимает показатели текущего процесса. Поля heap/GC заполняются
// всегда; RSS и CPU — если их удалось прочитать через gopsutil.
func SampleProcess() (ProcessStats, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats := ProcessStats{HeapBytes: m.HeapAlloc, NumGC: m.NumGC}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return stats, err
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		return stats, err
	}
	stats.RSSBytes = mem.RSS

	// Процент CPU за всё время жизни процесса
	if cpu, err := proc.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	}
	return stats, nil
}
