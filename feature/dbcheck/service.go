package dbcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"splitnest-cli/core/console"
	"splitnest-cli/core/database"
	"splitnest-cli/core/envfile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingURI is returned when no connection string was configured.
var ErrMissingURI = errors.New(envfile.KeyMongoURI + " is not set")

// State is a step of the connectivity check.
type State string

const (
	StateIdle            State = "idle"
	StateConfigLoaded    State = "config_loaded"
	StateConfigMissing   State = "config_missing"
	StateAborted         State = "aborted"
	StateConnected       State = "connected"
	StateConnectFailed   State = "connect_failed"
	StateRecordWritten   State = "record_written"
	StateRecordDeleted   State = "record_deleted"
	StateRoundTripFailed State = "round_trip_failed"
	StateDisconnected    State = "disconnected"
)

// Opener creates a database client. database.Open is the production implementation.
type Opener func(ctx context.Context, cfg database.Config) (database.Client, error)

// Report is the outcome of a single run.
type Report struct {
	// RunID identifies the run in logs and in the probe document name.
	RunID string
	// Trail lists every state entered, in order.
	Trail []State
	// Err is the failure that ended the probe, if any.
	Err error
	// Category classifies Err.
	Category Category
	// DocumentID is the identifier of the inserted probe document.
	DocumentID any
}

// State returns the last state entered.
func (r *Report) State() State {
	if len(r.Trail) == 0 {
		return StateIdle
	}
	return r.Trail[len(r.Trail)-1]
}

// Succeeded reports whether the full round trip completed.
func (r *Report) Succeeded() bool {
	return r.Err == nil && r.State() == StateDisconnected
}

func (r *Report) enter(s State) {
	r.Trail = append(r.Trail, s)
}

// Service runs the connectivity check.
type Service struct {
	cfg    database.Config
	open   Opener
	out    *console.Printer
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new connectivity check service.
func NewService(cfg database.Config, open Opener, out *console.Printer, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		open:   open,
		out:    out,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Run performs the check. The only error returned is ErrMissingURI; connection
// and round-trip failures are printed and recorded in the Report.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	report.enter(StateIdle)
	logg := s.logger.With(zap.String("run_id", report.RunID))

	s.out.Heading("🔍", "Testing MongoDB Connection...")
	s.out.Blank()

	if s.cfg.URI == "" {
		report.enter(StateConfigMissing)
		s.out.Error(fmt.Sprintf("%s not found in %s", envfile.KeyMongoURI, envfile.FileName))
		s.out.Plain(fmt.Sprintf("Please make sure you have a %s file with %s set.", envfile.FileName, envfile.KeyMongoURI))
		report.enter(StateAborted)
		logg.Debug("connection string missing, aborting")
		return report, ErrMissingURI
	}
	report.enter(StateConfigLoaded)

	s.out.Line("📡", "Connection string: "+Redact(s.cfg.URI))
	s.probe(ctx, report, logg)
	return report, nil
}

func (s *Service) probe(ctx context.Context, report *Report, logg *zap.Logger) {
	s.out.Line("🔄", "Attempting to connect...")

	client, err := s.open(ctx, s.cfg)
	defer s.release(ctx, client, report, logg)
	if err != nil {
		s.fail(report, StateConnectFailed, err, logg)
		return
	}

	if err := client.Ping(ctx); err != nil {
		s.fail(report, StateConnectFailed, err, logg)
		return
	}
	report.enter(StateConnected)
	s.out.Success("Successfully connected to MongoDB!")

	doc := NewProbeDocument("SplitNest Test "+report.RunID, s.now())
	id, err := client.InsertOne(ctx, s.cfg.Collection, doc)
	if err != nil {
		s.fail(report, StateRoundTripFailed, err, logg)
		return
	}
	if id == nil {
		id = doc.ID
	}
	report.DocumentID = id
	report.enter(StateRecordWritten)
	s.out.Success("Successfully created test document")

	deleted, err := client.DeleteByID(ctx, s.cfg.Collection, id)
	if err != nil {
		s.fail(report, StateRoundTripFailed, err, logg)
		return
	}
	if deleted != 1 {
		logg.Warn("unexpected delete count for probe document", zap.Int64("deleted", deleted), zap.Any("id", id))
	}
	report.enter(StateRecordDeleted)
	s.out.Success("Test document cleaned up")

	s.out.Blank()
	s.out.Line("🎉", "MongoDB is working perfectly!")
	s.out.Plain("You can now run: npm run dev")
	logg.Info("connectivity check passed", zap.String("collection", s.cfg.Collection))
}

func (s *Service) fail(report *Report, state State, err error, logg *zap.Logger) {
	report.enter(state)
	report.Err = err
	report.Category = Classify(err)

	s.out.Error("MongoDB connection failed:")
	s.out.Plain("Error: " + err.Error())

	if a, ok := report.Category.Advice(); ok {
		s.out.Blank()
		s.out.Line("💡", a.Heading)
		s.out.Steps(a.Steps)
	}

	s.out.Blank()
	s.out.Line("📚", "For detailed setup instructions, see MONGODB_SETUP.md")
	logg.Warn("connectivity check failed",
		zap.String("state", string(state)),
		zap.String("category", string(report.Category)),
		zap.Error(err),
	)
}

// release disconnects client on every exit path of probe. The disconnect runs
// even if ctx was cancelled.
func (s *Service) release(ctx context.Context, client database.Client, report *Report, logg *zap.Logger) {
	if client != nil {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeout())
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logg.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}
	report.enter(StateDisconnected)
	s.out.Line("🔌", "Disconnected from MongoDB")
}
