package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	pluginrpc "planwise/internal/modules/plugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

const defaultMaxTermCredits = 18

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"command", "audit"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.ListCommandsResponse, error) {
	return &pluginrpc.ListCommandsResponse{Commands: []pluginrpc.CommandDescriptor{
		{ID: "echo", Title: "Echo", Description: "Echoes input and execution context", Kind: "command", TimeoutMS: 2000},
		{
			ID:              "credit-load",
			Title:           "Credit load",
			Description:     "Flags terms planned above a credit ceiling",
			Kind:            "audit",
			InputSchemaJSON: `{"type":"object","properties":{"max_term_credits":{"type":"number"}}}`,
			TimeoutMS:       2500,
		},
	}}, nil
}

type planInput struct {
	MaxTermCredits float64 `json:"max_term_credits"`
	Items          []struct {
		Term    string  `json:"term"`
		Course  string  `json:"course"`
		Credits float64 `json:"credits"`
	} `json:"items"`
}

type finding struct {
	Severity string `json:"severity"`
	Term     string `json:"term,omitempty"`
	Message  string `json:"message"`
}

func (s *server) Execute(_ context.Context, in *pluginrpc.ExecuteRequest) (*pluginrpc.ExecuteResponse, error) {
	switch in.CommandID {
	case "echo":
		raw, _ := json.Marshal(map[string]any{
			"echo":    in.InputJSON,
			"stu_id":  in.Context.StudentID,
			"plan_id": in.Context.PlanID,
		})
		return &pluginrpc.ExecuteResponse{Stdout: in.InputJSON, OutputJSON: string(raw)}, nil
	case "credit-load":
		return creditLoad(in)
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

func creditLoad(in *pluginrpc.ExecuteRequest) (*pluginrpc.ExecuteResponse, error) {
	input := planInput{}
	if strings.TrimSpace(in.InputJSON) != "" {
		if err := json.Unmarshal([]byte(in.InputJSON), &input); err != nil {
			return &pluginrpc.ExecuteResponse{Stderr: err.Error(), ExitCode: 2}, nil
		}
	}
	ceiling := input.MaxTermCredits
	if ceiling <= 0 {
		ceiling = defaultMaxTermCredits
	}

	order := []string{}
	totals := map[string]float64{}
	for _, item := range input.Items {
		if _, ok := totals[item.Term]; !ok {
			order = append(order, item.Term)
		}
		totals[item.Term] += item.Credits
	}
	findings := []finding{}
	for _, term := range order {
		if totals[term] > ceiling {
			findings = append(findings, finding{
				Severity: "warn",
				Term:     term,
				Message:  fmt.Sprintf("%s credits planned, ceiling is %s", num(totals[term]), num(ceiling)),
			})
		}
	}
	if len(input.Items) == 0 {
		findings = append(findings, finding{Severity: "info", Message: "plan has no courses"})
	}
	raw, _ := json.Marshal(map[string]any{"findings": findings})
	return &pluginrpc.ExecuteResponse{Stdout: fmt.Sprintf("%d finding(s)", len(findings)), OutputJSON: string(raw)}, nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
