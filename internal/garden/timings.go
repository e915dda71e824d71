package garden

import (
	"time"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// Timings are the cosmetic delays the controller schedules.
type Timings struct {
	SetupDelay       time.Duration // setup complete → dashboard
	Toast            time.Duration // toast auto-dismiss
	MoistureInterval time.Duration
	PHInterval       time.Duration
	AdvanceDelay     time.Duration // test complete → next step
	ResultsDelay     time.Duration // save/share → progress/community
	LessonFollowUp   time.Duration
	SensorStart      time.Duration
	SensorInterval   time.Duration
	VoicePhrase      time.Duration
	VoiceListen      time.Duration
	VoiceClose       time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		SetupDelay:       2 * time.Second,
		Toast:            3 * time.Second,
		MoistureInterval: 200 * time.Millisecond,
		PHInterval:       300 * time.Millisecond,
		AdvanceDelay:     2 * time.Second,
		ResultsDelay:     1500 * time.Millisecond,
		LessonFollowUp:   2 * time.Second,
		SensorStart:      5 * time.Second,
		SensorInterval:   30 * time.Second,
		VoicePhrase:      2 * time.Second,
		VoiceListen:      8 * time.Second,
		VoiceClose:       2 * time.Second,
	}
}

// testInterval returns the tick period for a soil test.
func (t Timings) testInterval(kind domain.TestKind) time.Duration {
	if kind == domain.TestPH {
		return t.PHInterval
	}
	return t.MoistureInterval
}
