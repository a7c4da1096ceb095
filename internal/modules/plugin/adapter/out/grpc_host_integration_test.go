package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	pluginout "planwise/internal/modules/plugin/adapter/out"
	"planwise/internal/modules/plugin/domain"
)

func TestGRPCHostIntegrationReferencePlugin(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the reference plugin")
	}
	binPath, checksum := buildReferencePlugin(t)
	manifest := domain.Manifest{
		Name:         "reference",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Kind{domain.KindCommand, domain.KindAudit},
	}

	host := pluginout.NewGRPCHost(zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "reference" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}
	commands, err := host.ListCommands(ctx, manifest)
	if err != nil {
		t.Fatalf("list commands: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(commands))
	}

	planCtx := domain.Context{DataDir: t.TempDir(), StudentID: 5, PlanID: 3}
	echo, err := host.Execute(ctx, manifest, domain.ExecuteRequest{CommandID: "echo", InputJSON: `{"message":"hello"}`, Context: planCtx})
	if err != nil {
		t.Fatalf("execute echo: %v", err)
	}
	if echo.ExitCode != 0 || !strings.Contains(echo.OutputJSON, `"stu_id":5`) {
		t.Fatalf("unexpected echo result: %+v", echo)
	}

	audit, err := host.Execute(ctx, manifest, domain.ExecuteRequest{
		CommandID: "credit-load",
		InputJSON: `{"plan_id":3,"items":[{"term":"FA24","course":"MATH 140","credits":10},{"term":"FA24","course":"PHYS 211","credits":10}]}`,
		Context:   planCtx,
	})
	if err != nil {
		t.Fatalf("execute audit: %v", err)
	}
	findings, err := domain.ParseFindings(audit.OutputJSON)
	if err != nil {
		t.Fatalf("parse findings: %v", err)
	}
	if len(findings) != 1 || findings[0].TermCode != "FA24" || findings[0].Severity != "warn" {
		t.Fatalf("unexpected findings: %+v", findings)
	}
}

func buildReferencePlugin(t *testing.T) (string, string) {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "reference-plugin")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/reference")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build reference plugin: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built plugin: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
