package scheduler

import (
	"time"

	"github.com/rchalamala/beavered/pkg/model"
)

// Configuration carries the file paths and term parameters shared by the
// CLI and server entry points.
type Configuration struct {
	CatalogFile  string
	CatalogJSON  string
	ExportFile   string
	Term         string
	TermStart    time.Time
	Availability model.Availability
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		CatalogFile:  "./res/catalog-sp2023.csv",
		CatalogJSON:  "./res/IndexedTotalSP2022-23.json",
		ExportFile:   "schedule.csv",
		Term:         "sp2023",
		TermStart:    time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC),
		Availability: model.DefaultAvailability(),
	}
}
