package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"splitnest-cli/core/config"
	"splitnest-cli/core/console"
	"splitnest-cli/core/envfile"

	"go.uber.org/zap"
)

// ErrConfigExists is returned by WriteConfig when the file is already present.
var ErrConfigExists = errors.New("configuration file already exists")

// Result describes what a setup run did.
type Result struct {
	// Path is the configuration file location.
	Path string
	// Created is true when this run wrote the file.
	Created bool
	// RuntimeFound is true when any runtime probe succeeded.
	RuntimeFound bool
}

// Service bootstraps the local environment.
type Service struct {
	dir    string
	cfg    config.SetupConfig
	runner CommandRunner
	random io.Reader
	probes []Probe
	out    *console.Printer
	logger *zap.Logger
}

// NewService creates a new setup service rooted at dir.
func NewService(dir string, cfg config.SetupConfig, runner CommandRunner, random io.Reader, out *console.Printer, logger *zap.Logger) *Service {
	return &Service{
		dir:    dir,
		cfg:    cfg,
		runner: runner,
		random: random,
		probes: RuntimeProbes,
		out:    out,
		logger: logger,
	}
}

// Run creates the configuration file if needed, checks for a local MongoDB
// and prints the next steps. Only a failure to create the file is returned.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	result := &Result{Path: envfile.Path(s.dir)}

	s.out.Title("🏠", "SplitNest Setup Script")
	s.out.Blank()

	created, err := s.ensureConfig(result.Path)
	if err != nil {
		s.out.Error(fmt.Sprintf("Failed to create %s: %v", envfile.FileName, err))
		return result, err
	}
	result.Created = created

	result.RuntimeFound = DetectRuntime(ctx, s.runner, s.probes, s.cfg.ProbeTimeout(), s.logger)
	s.reportRuntime(result.RuntimeFound)

	s.printNextSteps()

	s.logger.Info("setup finished",
		zap.String("path", result.Path),
		zap.Bool("created", result.Created),
		zap.Bool("runtime_found", result.RuntimeFound),
	)
	return result, nil
}

func (s *Service) ensureConfig(path string) (bool, error) {
	if envfile.Exists(path) {
		s.skipExisting()
		return false, nil
	}

	secret, err := GenerateSecret(s.random)
	if err != nil {
		return false, err
	}

	content, err := Render(TemplateValues{
		MongoURI:           s.cfg.MongoURI,
		AppURL:             s.cfg.AppURL,
		Secret:             secret,
		GoogleClientID:     PlaceholderGoogleClientID,
		GoogleClientSecret: PlaceholderGoogleClientSecret,
	})
	if err != nil {
		return false, err
	}

	if err := WriteConfig(path, content); err != nil {
		if errors.Is(err, ErrConfigExists) {
			// Someone created it between the check and the write.
			s.skipExisting()
			return false, nil
		}
		return false, err
	}

	s.logger.Debug("configuration file written", zap.String("path", path), zap.Int("bytes", len(content)))
	s.out.Success(fmt.Sprintf("Created %s file with default configuration", envfile.FileName))
	s.out.Detail("Please update the MongoDB URI and Google OAuth credentials as needed.")
	s.out.Blank()
	return true, nil
}

func (s *Service) skipExisting() {
	s.out.Warn(fmt.Sprintf("%s already exists. Skipping environment setup.", envfile.FileName))
	s.out.Detail(fmt.Sprintf("If you need to update it, please edit %s manually.", envfile.FileName))
	s.out.Blank()
}

// WriteConfig creates path with content. It refuses to replace an existing
// file and removes its own partial output if the write fails.
func WriteConfig(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return ErrConfigExists
	}
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func (s *Service) reportRuntime(found bool) {
	if found {
		s.out.Success("MongoDB is available")
		s.out.Blank()
		return
	}

	s.out.Warn("MongoDB doesn't seem to be installed or running.")
	s.out.Detail("Please install MongoDB and start the service:")
	s.out.Bullets([]string{
		"Windows: Download from https://www.mongodb.com/try/download/community",
		"macOS: brew install mongodb-community",
		"Linux: sudo apt-get install mongodb",
		"Or use MongoDB Atlas (cloud): https://www.mongodb.com/atlas",
	})
	s.out.Blank()
}

func (s *Service) printNextSteps() {
	s.out.Heading("🚀", "Next steps:")
	s.out.Steps([]string{
		"Make sure MongoDB is running on your system",
		fmt.Sprintf("Update %s with your MongoDB connection string", envfile.FileName),
		"(Optional) Set up Google OAuth for social login",
		"Run: npm run dev",
		"Open: " + s.cfg.AppURL,
	})
	s.out.Blank()
	s.out.Line("📚", "For detailed setup instructions, see README.md")
	s.out.Line("🎉", "Happy coding with SplitNest!")
}
