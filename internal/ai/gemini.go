// Package ai implements the report.Generator boundary on top of Google's
// Gemini API. Retry policy, backoff and safety handling live here; the
// rest of the application only sees the Generator interface.
package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog"
	"github.com/salaleitura/leitura-backend/internal/config"
	"github.com/salaleitura/leitura-backend/internal/report"
	"google.golang.org/genai"
)

// GeminiGenerator implements report.Generator using the Gemini API.
type GeminiGenerator struct {
	client           *genai.Client
	model            string
	maxRetries       int
	baseDelaySeconds int
	reportTmpl       *template.Template
	materialTmpl     *template.Template
	log              zerolog.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator from config.
func NewGeminiGenerator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*GeminiGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is empty", report.ErrInvalidConfig)
	}
	if cfg.GeminiModel == "" {
		return nil, fmt.Errorf("%w: GEMINI_MODEL is empty", report.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", report.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		client:           client,
		model:            cfg.GeminiModel,
		maxRetries:       cfg.AIMaxRetries,
		baseDelaySeconds: cfg.AIRetryDelaySeconds,
		reportTmpl:       template.Must(template.New("report").Parse(reportPromptTemplate)),
		materialTmpl:     template.Must(template.New("material").Parse(materialPromptTemplate)),
		log:              log.With().Str("component", "gemini").Logger(),
	}, nil
}

// GenerateReport produces a pedagogical report from the student context.
func (g *GeminiGenerator) GenerateReport(ctx context.Context, req report.ReportRequest) (string, error) {
	if len(req.Context.RecentSummaries) == 0 {
		return "", report.ErrEmptyStudentData
	}

	var prompt bytes.Buffer
	if err := g.reportTmpl.Execute(&prompt, reportPromptData{
		Name:         req.Context.Student.Name,
		GradeLabel:   req.Context.GradeLabel,
		ReadingLevel: string(req.Context.Student.ReadingLevel),
		HistoryCount: req.Context.HistoryCount,
		Summaries:    req.Context.RecentSummaries,
	}); err != nil {
		return "", fmt.Errorf("%w: execute report template: %v", report.ErrGenerationFailed, err)
	}

	return g.callWithRetry(ctx, prompt.String())
}

// GenerateMaterial produces a reading passage for the requested level.
func (g *GeminiGenerator) GenerateMaterial(ctx context.Context, req report.MaterialRequest) (string, error) {
	var prompt bytes.Buffer
	if err := g.materialTmpl.Execute(&prompt, materialPromptData{
		ReadingLevel: string(req.ReadingLevel),
		Topic:        req.Topic,
		WordCount:    req.WordCount,
	}); err != nil {
		return "", fmt.Errorf("%w: execute material template: %v", report.ErrGenerationFailed, err)
	}

	return g.callWithRetry(ctx, prompt.String())
}

// callWithRetry calls the Gemini API with bounded retries and exponential
// backoff with jitter. Blocked content is permanent and never retried.
func (g *GeminiGenerator) callWithRetry(ctx context.Context, prompt string) (string, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; ; attempt++ {
		text, err := g.call(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, report.ErrContentBlocked) {
			return "", err
		}
		if attempt >= g.maxRetries {
			return "", fmt.Errorf("%w: exceeded %d attempts: %v", report.ErrGenerationFailed, attempt+1, err)
		}

		// delay = base * 2^attempt * jitter(0.5..1.0)
		backoff := float64(g.baseDelaySeconds) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rng.Float64()*0.5) * float64(time.Second))

		g.log.Warn().Err(err).Int("attempt", attempt+1).Dur("retry_in", delay).Msg("Gemini call failed, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", report.ErrGenerationFailed, ctx.Err())
		}
	}
}

func (g *GeminiGenerator) call(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", report.ErrGenerationFailed)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", report.ErrContentBlocked
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no text in response", report.ErrGenerationFailed)
	}
	return text, nil
}

type reportPromptData struct {
	Name         string
	GradeLabel   string
	ReadingLevel string
	HistoryCount int
	Summaries    []string
}

type materialPromptData struct {
	ReadingLevel string
	Topic        string
	WordCount    int
}

const reportPromptTemplate = `Você é um assistente pedagógico de alfabetização.
Escreva um relatório pedagógico curto (3 a 5 parágrafos, em português) sobre o aluno abaixo,
destacando a evolução da fluência leitora, pontos fortes e recomendações práticas para a família.

Aluno: {{.Name}}
Turma: {{.GradeLabel}}
Nível de leitura: {{.ReadingLevel}}
Total de avaliações registradas: {{.HistoryCount}}

Avaliações mais recentes (da mais nova para a mais antiga):
{{range .Summaries}}- {{.}}
{{end}}`

const materialPromptTemplate = `Você é um assistente pedagógico de alfabetização.
Escreva um texto de leitura em português para um aluno de nível "{{.ReadingLevel}}".
{{if .Topic}}Tema: {{.Topic}}.
{{end}}O texto deve ter aproximadamente {{.WordCount}} palavras, vocabulário adequado ao nível
e terminar com três perguntas simples de compreensão.`
