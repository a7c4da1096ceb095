package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"planwise/internal/modules/plugin/domain"
	"planwise/internal/modules/plugin/dto"
	"planwise/internal/modules/plugin/service"
	apperrors "planwise/internal/platform/errors"
)

type fakeStore struct {
	manifests []domain.Manifest
}

func (s fakeStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	commands []domain.CommandDescriptor
	version  string
	output   string
	requests *[]domain.ExecuteRequest
}

func (fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }
func (h fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: "fake", Version: h.version}, nil
}
func (h fakeHost) ListCommands(context.Context, domain.Manifest) ([]domain.CommandDescriptor, error) {
	return h.commands, nil
}
func (h fakeHost) Execute(_ context.Context, _ domain.Manifest, req domain.ExecuteRequest) (domain.ExecuteResult, error) {
	if h.requests != nil {
		*h.requests = append(*h.requests, req)
	}
	return domain.ExecuteResult{Stdout: "ok", OutputJSON: h.output}, nil
}

func input(name, command string) dto.ExecuteInput {
	return dto.ExecuteInput{PluginName: name, CommandID: command, DataDir: "/tmp", StudentID: 5, PlanID: 3}
}

func TestExecuteRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, false, []domain.Kind{domain.KindCommand})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Execute(context.Background(), input(manifest.Name, "echo"))
	if !errors.Is(err, domain.ErrPluginDisabled) {
		t.Fatalf("expected ErrPluginDisabled, got %v", err)
	}
}

func TestAuditRejectsMissingCapability(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindCommand})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	_, err := svc.Audit(context.Background(), input(manifest.Name, "credit-load"))
	if !errors.Is(err, domain.ErrCapabilityMissing) {
		t.Fatalf("expected ErrCapabilityMissing, got %v", err)
	}
}

func TestAuditRequiresPlan(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindAudit})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{})
	in := input(manifest.Name, "credit-load")
	in.PlanID = 0
	if _, err := svc.Audit(context.Background(), in); !errors.Is(err, apperrors.ErrNoPlan) {
		t.Fatalf("expected ErrNoPlan, got %v", err)
	}
}

func TestExecuteRejectsUnknownCommandAndPlugin(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindCommand})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{commands: []domain.CommandDescriptor{{ID: "other", Kind: domain.KindCommand}}})
	if _, err := svc.Execute(context.Background(), input(manifest.Name, "echo")); !errors.Is(err, domain.ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound, got %v", err)
	}
	if _, err := svc.Execute(context.Background(), input("missing", "echo")); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExecuteRejectsKindMismatch(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindCommand, domain.KindAudit})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{commands: []domain.CommandDescriptor{{ID: "credit-load", Kind: domain.KindAudit}}})
	if _, err := svc.Execute(context.Background(), input(manifest.Name, "credit-load")); err == nil {
		t.Fatalf("expected kind mismatch error")
	}
}

func TestExecuteInvalidJSON(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindCommand})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{commands: []domain.CommandDescriptor{{ID: "echo", Kind: domain.KindCommand}}})
	in := input(manifest.Name, "echo")
	in.InputJSON = "{"
	if _, err := svc.Execute(context.Background(), in); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExecutePassesContextAndTimeout(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindCommand})
	var requests []domain.ExecuteRequest
	host := fakeHost{commands: []domain.CommandDescriptor{{ID: "echo", Kind: domain.KindCommand, TimeoutMS: 1500}}, requests: &requests}
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, host)

	out, err := svc.Execute(context.Background(), input(manifest.Name, "echo"))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Stdout != "ok" || len(requests) != 1 {
		t.Fatalf("unexpected execute: %+v %+v", out, requests)
	}
	got := requests[0]
	if got.Timeout != 1500*time.Millisecond || got.Context.StudentID != 5 || got.Context.PlanID != 3 {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestAuditDecodesFindings(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindAudit})
	host := fakeHost{
		commands: []domain.CommandDescriptor{{ID: "credit-load", Kind: domain.KindAudit}},
		output:   `{"findings":[{"severity":"warn","term":"FA24","message":"20 credits planned"}]}`,
	}
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, host)
	out, err := svc.Audit(context.Background(), input(manifest.Name, "credit-load"))
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if len(out.Findings) != 1 || out.Findings[0].TermCode != "FA24" {
		t.Fatalf("unexpected findings: %+v", out.Findings)
	}
}

func TestDoctorReportsVersionDrift(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, true, []domain.Kind{domain.KindCommand})
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, fakeHost{version: "2.0.0"})
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 || !results[0].LifecycleOK || results[0].Error == "" {
		t.Fatalf("expected version drift to be reported: %+v", results)
	}
}

func manifestWithBinary(t *testing.T, enabled bool, capabilities []domain.Kind) domain.Manifest {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "plugin-bin")
	if err := os.WriteFile(binPath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte("binary"))
	return domain.Manifest{
		Name:         "demo",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       hex.EncodeToString(hash[:]),
		Enabled:      enabled,
		Capabilities: capabilities,
	}
}
