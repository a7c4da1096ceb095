package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Kind names both a manifest capability and the kind of a plugin command.
type Kind string

const (
	KindCommand Kind = "command"
	KindAudit   Kind = "audit"
)

var (
	ErrPluginDisabled    = errors.New("plugin is disabled")
	ErrChecksumMismatch  = errors.New("plugin checksum mismatch")
	ErrCapabilityMissing = errors.New("plugin capability missing")
	ErrCommandNotFound   = errors.New("plugin command not found")
	ErrPluginTimeout     = errors.New("plugin timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

func (k Kind) Validate() error {
	switch k {
	case KindCommand, KindAudit:
		return nil
	default:
		return fmt.Errorf("unknown plugin kind: %s", k)
	}
}

// Manifest is one entry of plugins.json.
type Manifest struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Binary       string `json:"binary"`
	SHA256       string `json:"sha256"`
	Enabled      bool   `json:"enabled"`
	Capabilities []Kind `json:"capabilities"`
}

func (m Manifest) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("plugin name is required")
	case m.Version == "":
		return fmt.Errorf("plugin %s: version is required", m.Name)
	case m.Binary == "":
		return fmt.Errorf("plugin %s: binary path is required", m.Name)
	case !sha256Pattern.MatchString(m.SHA256):
		return fmt.Errorf("plugin %s: sha256 must be lowercase 64-char hex", m.Name)
	case len(m.Capabilities) == 0:
		return fmt.Errorf("plugin %s: capabilities are required", m.Name)
	}
	seen := make(map[Kind]bool, len(m.Capabilities))
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if seen[capability] {
			return fmt.Errorf("plugin %s: duplicate capability %s", m.Name, capability)
		}
		seen[capability] = true
	}
	return nil
}

func (m Manifest) HasCapability(capability Kind) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type CommandDescriptor struct {
	ID              string
	Title           string
	Description     string
	Kind            Kind
	InputSchemaJSON string
	TimeoutMS       int
}

func (d CommandDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("command id is required")
	}
	return d.Kind.Validate()
}

// Timeout is the command's declared timeout, or fallback when it declares none.
func (d CommandDescriptor) Timeout(fallback time.Duration) time.Duration {
	if d.TimeoutMS <= 0 {
		return fallback
	}
	return time.Duration(d.TimeoutMS) * time.Millisecond
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Kind
}

// Context is what a plugin learns about the student it runs for.
type Context struct {
	DataDir   string
	StudentID int64
	PlanID    int64
	Env       map[string]string
}

func (c Context) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir is required")
	}
	if c.StudentID < 0 || c.PlanID < 0 {
		return fmt.Errorf("student and plan ids must not be negative")
	}
	return nil
}

type ExecuteRequest struct {
	CommandID string
	InputJSON string
	Context   Context
	Timeout   time.Duration
}

func (r ExecuteRequest) Validate() error {
	if r.CommandID == "" {
		return fmt.Errorf("command id is required")
	}
	if r.InputJSON != "" && !json.Valid([]byte(r.InputJSON)) {
		return fmt.Errorf("input-json must be valid JSON")
	}
	return r.Context.Validate()
}

type ExecuteResult struct {
	Stdout     string
	Stderr     string
	OutputJSON string
	ExitCode   int
}

// Finding is one remark an audit command makes about a plan.
type Finding struct {
	Severity   string `json:"severity"`
	TermCode   string `json:"term,omitempty"`
	CourseCode string `json:"course,omitempty"`
	Message    string `json:"message"`
}

// ParseFindings reads {"findings":[...]} from an audit's output. Output
// without a findings list yields none.
func ParseFindings(outputJSON string) ([]Finding, error) {
	if strings.TrimSpace(outputJSON) == "" {
		return nil, nil
	}
	body := struct {
		Findings []Finding `json:"findings"`
	}{}
	if err := json.Unmarshal([]byte(outputJSON), &body); err != nil {
		return nil, fmt.Errorf("decode audit findings: %w", err)
	}
	out := body.Findings[:0]
	for _, f := range body.Findings {
		if strings.TrimSpace(f.Message) == "" {
			continue
		}
		if f.Severity == "" {
			f.Severity = "info"
		}
		out = append(out, f)
	}
	return out, nil
}
