package service

import (
	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/media"
	"github.com/SudyStefan/MSD-UX-Prototype/pkg/scheduler"
)

var scanConstraints = media.Constraints{FacingMode: "environment", Width: 1280, Height: 720}

type scanner struct {
	stream     media.Stream
	task       *scheduler.Task
	scanning   bool
	showResult bool
	result     string
	notice     string
	history    []entity.ScanResult
}

// release cancels the pending scan and stops the stream. Safe to repeat.
func (s *scanner) release() {
	s.task.Cancel()
	s.task = nil
	if s.stream != nil {
		s.stream.Stop()
		s.stream = nil
	}
	s.scanning = false
}

// teardown is what leaving the scan page does. History survives.
func (s *scanner) teardown() {
	s.release()
	s.showResult = false
	s.result = ""
	s.notice = ""
}

func (s *scanner) record(r entity.ScanResult, limit int) {
	s.history = append([]entity.ScanResult{r}, s.history...)
	if len(s.history) > limit {
		s.history = s.history[:limit]
	}
}
