package latex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/logger"
)

// ErrEngineNotFound is returned when the TeX engine is not on the PATH.
// Callers treat this as "skip PDF output", never as a run failure.
var ErrEngineNotFound = errors.New("latex engine not found")

// Compiler runs the external TeX engine over generated documents.
type Compiler struct {
	engine        string
	timeout       time.Duration
	passes        int
	keepArtifacts bool
	log           *logger.Logger
}

// NewCompiler creates a Compiler from configuration.
func NewCompiler(cfg *config.LatexConfig, log *logger.Logger) *Compiler {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Compiler{
		engine:        cfg.Engine,
		timeout:       time.Duration(cfg.TimeoutSeconds) * time.Second,
		passes:        cfg.Passes,
		keepArtifacts: cfg.KeepArtifacts,
		log:           log,
	}
}

// Available reports whether the engine can be found on the PATH.
func (c *Compiler) Available() bool {
	_, err := exec.LookPath(c.engine)
	return err == nil
}

// Render writes the document source next to pdfPath and compiles it.
// It returns true when the PDF exists afterwards.
func (c *Compiler) Render(ctx context.Context, source, pdfPath string) (bool, error) {
	texPath := strings.TrimSuffix(pdfPath, ".pdf") + ".tex"
	if err := os.WriteFile(texPath, []byte(source), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", texPath, err)
	}
	return c.Compile(ctx, texPath)
}

// Compile runs the engine over texPath for the configured number of passes.
// Each pass gets its own timeout; a timed-out pass abandons the document
// without retry. Engine output is collected into a .log file. Intermediate
// .aux/.out files are always removed; the .tex and .log files are removed
// too unless artifact retention is configured.
func (c *Compiler) Compile(ctx context.Context, texPath string) (bool, error) {
	outDir := filepath.Dir(texPath)
	if outDir == "" {
		outDir = "."
	}
	base := strings.TrimSuffix(texPath, ".tex")
	pdfPath := base + ".pdf"

	var engineLog bytes.Buffer
	for pass := 0; pass < c.passes; pass++ {
		passCtx, cancel := context.WithTimeout(ctx, c.timeout)
		cmd := exec.CommandContext(passCtx, c.engine,
			"-interaction=nonstopmode", "-output-directory", outDir, texPath)
		output, err := cmd.CombinedOutput()
		cancel()

		engineLog.Write(output)

		if errors.Is(err, exec.ErrNotFound) {
			return false, ErrEngineNotFound
		}
		if passCtx.Err() == context.DeadlineExceeded {
			c.log.Warnw("Typesetting pass timed out, abandoning document",
				"tex", texPath,
				"pass", pass+1,
				"timeout", c.timeout,
			)
			break
		}
		if err != nil {
			// pdflatex exits non-zero on recoverable warnings too; the
			// PDF-exists check below decides success.
			c.log.Debugw("Typesetting pass exited with error",
				"tex", texPath,
				"pass", pass+1,
				"error", err,
			)
		}
	}

	if err := os.WriteFile(base+".log", engineLog.Bytes(), 0644); err != nil {
		c.log.Warnw("Failed to write engine log", "path", base+".log", "error", err)
	}

	c.cleanup(base)

	if _, err := os.Stat(pdfPath); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *Compiler) cleanup(base string) {
	for _, ext := range []string{".aux", ".out"} {
		_ = os.Remove(base + ext)
	}
	if !c.keepArtifacts {
		for _, ext := range []string{".tex", ".log"} {
			_ = os.Remove(base + ext)
		}
	}
}
