package garden

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// Timer asks the presentation to feed Intent back into Dispatch after the
// given delay.
type Timer struct {
	After  time.Duration
	Intent Intent
}

// Result is the outcome of one Dispatch. Err is set for rejected intents
// (validation, unknown screen or step); the state is then unchanged apart
// from any toast explaining the rejection.
type Result struct {
	State  State
	Timers []Timer
	Err    error
}

// ProgressFactory builds the generator for a soil test run.
type ProgressFactory func(rng *rand.Rand, kind domain.TestKind) ProgressGenerator

// Voice simulation phases past the listening phrases.
const (
	voiceHeard = -1
	voiceDone  = -2
)

// Controller owns the session state. It is not safe for concurrent use; the
// presentation calls it from a single update loop.
type Controller struct {
	state       State
	timings     Timings
	profiles    ProfileStore
	results     ResultRecorder
	rng         *rand.Rand
	now         func() time.Time
	log         *zap.Logger
	newProgress ProgressFactory

	progress ProgressGenerator
	toastSeq uint64
	runSeq   uint64
	voiceSeq uint64
}

type Option func(*Controller)

func WithProfileStore(s ProfileStore) Option {
	return func(c *Controller) { c.profiles = s }
}

func WithResultRecorder(r ResultRecorder) Option {
	return func(c *Controller) { c.results = r }
}

func WithTimings(t Timings) Option {
	return func(c *Controller) { c.timings = t }
}

// WithRand fixes the random source used by sensor jitter and test progress.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func WithProgressFactory(f ProgressFactory) Option {
	return func(c *Controller) { c.newProgress = f }
}

// New returns a controller on the welcome screen with an empty profile.
func New(opts ...Option) *Controller {
	c := &Controller{
		timings: DefaultTimings(),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		now:     time.Now,
		log:     zap.NewNop(),
		newProgress: func(rng *rand.Rand, kind domain.TestKind) ProgressGenerator {
			return NewTestProgress(rng, kind)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = NewState(c.now())
	return c
}

// Start loads the saved profile, if any, and schedules the background sensor.
func (c *Controller) Start(ctx context.Context) Result {
	if c.profiles != nil {
		p, err := c.profiles.Load(ctx)
		switch {
		case err != nil:
			c.log.Warn("load profile", zap.Error(err))
		case p != nil:
			c.state.Profile = *p
			c.applyFlags()
			if p.LastCheckedAt != nil {
				c.state.LastChecked = *p.LastCheckedAt
			}
		}
	}
	return c.result(Timer{After: c.timings.SensorStart, Intent: SensorTick{}})
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Dispatch applies one intent.
func (c *Controller) Dispatch(ctx context.Context, in Intent) Result {
	if in == nil {
		return c.result()
	}
	c.log.Debug("dispatch", zap.String("intent", Name(in)))

	switch in := in.(type) {
	case GoToScreen:
		return c.goToScreen(in.Screen)
	case GoToStep:
		return c.goToStep(in.Step)
	case SelectRole:
		return c.selectRole(in.Role)
	case CompleteSetup:
		return c.completeSetup(ctx, in)
	case SetPreference:
		return c.setPreference(ctx, in.Pref, in.On)
	case RunTest:
		return c.runTest(in.Kind)
	case TestTick:
		return c.testTick(in.Run)
	case Notify:
		return c.result(c.notify(in.Message)...)
	case DismissToast:
		if c.state.Toast.Seq == in.Seq {
			c.state.Toast = Toast{}
		}
		return c.result()
	case RunQuickAction:
		if screen, ok := in.Action.Target(); ok {
			return c.goToScreen(screen)
		}
		return c.result(c.notify(domain.MsgComingSoon)...)
	case SaveResults:
		return c.saveResults(ctx)
	case ShareResults:
		return c.shareResults(ctx)
	case OpenTool:
		return c.result(c.notify(in.Tool.Message())...)
	case AskCommunity:
		return c.result(c.notify(in.Help.Message())...)
	case ChooseHelpOption:
		if c.state.Modal == ModalHelp {
			c.state.Modal = ModalNone
		}
		return c.result(c.notify(in.Option.Message())...)
	case ReactToPost:
		return c.reactToPost(in.PostID, in.Action)
	case OpenCategory:
		return c.result(c.notify(domain.MsgCategoryLocked)...)
	case StartLesson:
		timers := c.notify(domain.MsgLessonStart)
		timers = append(timers, Timer{After: c.timings.LessonFollowUp, Intent: Notify{Message: domain.MsgLessonFollowUp}})
		return c.result(timers...)
	case OpenModal:
		return c.openModal(in.Modal)
	case CloseModal:
		c.closeModal()
		return c.result()
	case SensorTick:
		c.state.Soil = c.state.Soil.Jittered(c.rng.Float64(), c.rng.Float64(), c.rng.Float64())
		return c.result(Timer{After: c.timings.SensorInterval, Intent: SensorTick{}})
	case VoiceTick:
		return c.voiceTick(in)
	}

	c.log.Warn("unhandled intent", zap.String("intent", Name(in)))
	return c.result()
}

func (c *Controller) goToScreen(screen domain.Screen) Result {
	if !screen.Valid() {
		c.log.Warn("unknown screen", zap.String("screen", string(screen)))
		return c.reject(fmt.Errorf("%w: %q", domain.ErrUnknownScreen, screen))
	}
	c.state.Screen = screen
	return c.result()
}

func (c *Controller) goToStep(step domain.Step) Result {
	if !step.Valid() {
		c.log.Warn("invalid step", zap.Int("step", int(step)))
		return c.reject(fmt.Errorf("%w: %d", domain.ErrInvalidStep, step))
	}
	c.state.Step = step
	return c.result()
}

func (c *Controller) selectRole(role domain.Role) Result {
	if !slices.Contains(domain.Roles, role) {
		return c.reject(fmt.Errorf("%w: %q", domain.ErrUnknownRole, role))
	}
	c.state.Profile.Role = role
	c.state.Screen = domain.ScreenSetup
	return c.result()
}

func (c *Controller) completeSetup(ctx context.Context, in CompleteSetup) Result {
	if err := domain.ValidateSetup(in.Name, in.Location); err != nil {
		c.log.Info("setup rejected", zap.Error(err))
		var timers []Timer
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			timers = c.notify(ve.Message)
		}
		res := c.result(timers...)
		res.Err = err
		return res
	}

	p := &c.state.Profile
	p.Name = strings.TrimSpace(in.Name)
	p.Location = in.Location
	p.Preferences = in.Preferences
	p.UpdatedAt = c.now()
	c.applyFlags()
	c.saveProfile(ctx)

	timers := c.notify(domain.WelcomeMessage(p.Name))
	timers = append(timers, Timer{After: c.timings.SetupDelay, Intent: GoToScreen{Screen: domain.ScreenDashboard}})
	return c.result(timers...)
}

func (c *Controller) setPreference(ctx context.Context, pref domain.Preference, on bool) Result {
	switch pref {
	case domain.PrefLargeText, domain.PrefHighContrast, domain.PrefVoiceGuidance:
	default:
		return c.reject(&domain.ValidationError{Field: "preference", Message: fmt.Sprintf("unknown preference %q", pref)})
	}
	c.state.Profile.Preferences = c.state.Profile.Preferences.With(pref, on)
	c.state.Profile.UpdatedAt = c.now()
	c.applyFlags()
	c.saveProfile(ctx)
	return c.result()
}

func (c *Controller) applyFlags() {
	prefs := c.state.Profile.Preferences
	c.state.Flags = Flags{LargeText: prefs.LargeText, HighContrast: prefs.HighContrast}
}

// saveProfile persists the profile. Failures are logged only: the session
// copy stays authoritative.
func (c *Controller) saveProfile(ctx context.Context) {
	if c.profiles == nil {
		return
	}
	p := c.state.Profile
	if err := c.profiles.Save(ctx, &p); err != nil {
		c.log.Error("save profile", zap.Error(err))
	}
}

func (c *Controller) runTest(kind domain.TestKind) Result {
	if _, err := domain.ParseTestKind(string(kind)); err != nil {
		return c.reject(&domain.ValidationError{Field: "test", Message: err.Error()})
	}
	c.runSeq++
	target := c.state.Soil.Value(kind)
	c.progress = c.newProgress(c.rng, kind)
	c.progress.Start(target)
	c.state.Test = TestRun{Kind: kind, Run: c.runSeq, Target: target, Running: true}
	c.log.Debug("test started", zap.String("kind", string(kind)), zap.Uint64("run", c.runSeq))
	return c.result(Timer{After: c.timings.testInterval(kind), Intent: TestTick{Run: c.runSeq}})
}

func (c *Controller) testTick(run uint64) Result {
	t := &c.state.Test
	if run != t.Run || !t.Running || c.progress == nil {
		return c.result()
	}
	t.Value = c.progress.Tick()
	if !c.progress.Complete() {
		return c.result(Timer{After: c.timings.testInterval(t.Kind), Intent: TestTick{Run: run}})
	}

	t.Running = false
	t.Done = true
	c.state.Readings[t.Kind] = t.Value
	next := domain.StepResults
	if t.Kind == domain.TestMoisture {
		next = domain.StepPH
	}
	timers := c.notify(domain.CompletionMessage(t.Kind))
	timers = append(timers, Timer{After: c.timings.AdvanceDelay, Intent: GoToStep{Step: next}})
	return c.result(timers...)
}

func (c *Controller) currentResult(shared bool) *domain.SoilTestResult {
	return &domain.SoilTestResult{
		ID:          uuid.NewString(),
		Moisture:    c.state.Reading(domain.TestMoisture),
		PH:          c.state.Reading(domain.TestPH),
		Temperature: c.state.Soil.Temperature,
		Nutrients:   c.state.Soil.Nutrients,
		Shared:      shared,
		RecordedAt:  c.now(),
	}
}

func (c *Controller) record(ctx context.Context, r *domain.SoilTestResult) error {
	if c.results != nil {
		if err := c.results.Record(ctx, r); err != nil {
			return err
		}
	}
	c.state.LastSavedID = r.ID
	c.state.LastChecked = r.RecordedAt
	at := r.RecordedAt
	c.state.Profile.LastCheckedAt = &at
	return nil
}

func (c *Controller) saveResults(ctx context.Context) Result {
	if err := c.record(ctx, c.currentResult(false)); err != nil {
		c.log.Error("save results", zap.Error(err))
		return c.result(c.notify(domain.MsgResultsSaveError)...)
	}
	timers := c.notify(domain.MsgResultsSaved)
	timers = append(timers, Timer{After: c.timings.ResultsDelay, Intent: GoToScreen{Screen: domain.ScreenProgress}})
	return c.result(timers...)
}

// shareResults marks the last saved result as shared, or records a new
// shared result when nothing was saved this session.
func (c *Controller) shareResults(ctx context.Context) Result {
	var err error
	if id := c.state.LastSavedID; id != "" {
		if c.results != nil {
			err = c.results.MarkShared(ctx, id)
		}
	} else {
		err = c.record(ctx, c.currentResult(true))
	}
	if err != nil {
		c.log.Error("share results", zap.Error(err))
		return c.result(c.notify(domain.MsgResultsSaveError)...)
	}
	timers := c.notify(domain.MsgResultsShared)
	timers = append(timers, Timer{After: c.timings.ResultsDelay, Intent: GoToScreen{Screen: domain.ScreenCommunity}})
	return c.result(timers...)
}

func (c *Controller) reactToPost(id string, action domain.PostAction) Result {
	msg := action.Message()
	if msg == "" {
		return c.reject(&domain.ValidationError{Field: "action", Message: fmt.Sprintf("unknown post action %q", action)})
	}
	if action == domain.PostLike {
		for i := range c.state.Posts {
			if c.state.Posts[i].ID == id {
				c.state.Posts[i].Likes++
			}
		}
	}
	return c.result(c.notify(msg)...)
}

func (c *Controller) openModal(m Modal) Result {
	switch m {
	case ModalHelp:
		c.closeModal()
		c.state.Modal = ModalHelp
		return c.result()
	case ModalVoice:
		c.closeModal()
		c.voiceSeq++
		c.state.Modal = ModalVoice
		c.state.VoiceStatus = domain.VoicePhrases[0]
		return c.result(
			Timer{After: c.timings.VoicePhrase, Intent: VoiceTick{Session: c.voiceSeq, Phase: 1}},
			Timer{After: c.timings.VoiceListen, Intent: VoiceTick{Session: c.voiceSeq, Phase: voiceHeard}},
		)
	}
	c.log.Warn("unknown modal", zap.String("modal", string(m)))
	return c.result()
}

// closeModal hides any modal and cancels a running voice session.
func (c *Controller) closeModal() {
	if c.state.Modal == ModalVoice {
		c.voiceSeq++
	}
	c.state.Modal = ModalNone
	c.state.VoiceStatus = ""
}

func (c *Controller) voiceTick(in VoiceTick) Result {
	if in.Session != c.voiceSeq || c.state.Modal != ModalVoice {
		return c.result()
	}
	switch in.Phase {
	case voiceHeard:
		c.state.VoiceStatus = domain.MsgVoiceHeard
		return c.result(Timer{After: c.timings.VoiceClose, Intent: VoiceTick{Session: in.Session, Phase: voiceDone}})
	case voiceDone:
		c.closeModal()
		return c.goToScreen(domain.ScreenTesting)
	}

	if in.Phase <= 0 || c.state.VoiceStatus == domain.MsgVoiceHeard {
		return c.result()
	}
	c.state.VoiceStatus = domain.VoicePhrases[in.Phase%len(domain.VoicePhrases)]
	next := in.Phase + 1
	if time.Duration(next)*c.timings.VoicePhrase >= c.timings.VoiceListen {
		return c.result()
	}
	return c.result(Timer{After: c.timings.VoicePhrase, Intent: VoiceTick{Session: in.Session, Phase: next}})
}

// notify replaces the visible toast and returns its dismiss timer. Empty
// messages are ignored.
func (c *Controller) notify(msg string) []Timer {
	if msg == "" {
		return nil
	}
	c.toastSeq++
	c.state.Toast = Toast{Seq: c.toastSeq, Message: msg}
	return []Timer{{After: c.timings.Toast, Intent: DismissToast{Seq: c.toastSeq}}}
}

func (c *Controller) result(timers ...Timer) Result {
	return Result{State: c.state.clone(), Timers: timers}
}

func (c *Controller) reject(err error) Result {
	return Result{State: c.state.clone(), Err: err}
}
