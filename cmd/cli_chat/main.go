package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hearmeout/internal/config"
	"hearmeout/internal/domain"
	"hearmeout/internal/lexicon"
	"hearmeout/internal/llm"
	"hearmeout/internal/service"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	// Solo errores: los warnings ensucian la conversacion.
	logger := zap.NewExample(zap.IncreaseLevel(zapcore.ErrorLevel))
	defer logger.Sync()

	var responder llm.Responder
	switch cfg.Responder {
	case config.ResponderHosted:
		responder = llm.NewHTTPResponder(cfg.HostedResponseURL, cfg.HostedResponseKey, nil, logger)
	case config.ResponderOpenAI:
		responder = llm.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
	}
	var translator llm.Translator
	if cfg.TranslationEnabled {
		translator = llm.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
	}

	engine := service.NewSessionEngine(lexicon.NewDefaultStore(), service.EngineOptions{
		TierPolicy:    cfg.IntensityTierPolicy,
		QuickIntents:  cfg.QuickIntentsEnabled,
		HistoryWindow: cfg.HistoryWindow,
		Translator:    translator,
		Responder:     responder,
		HostedTimeout: cfg.HostedTimeout,
	}, logger)

	session := engine.NewSession("", cfg.DefaultLanguage)
	if err := runChat(ctx, os.Stdin, os.Stdout, session, service.NewInsightsService()); err != nil {
		log.Fatal(err)
	}
}

// runChat es el loop interactivo; termina con salir/exit o fin de entrada.
func runChat(ctx context.Context, in io.Reader, out io.Writer, session *service.ConversationSession, insights *service.InsightsService) error {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "---- HearMeOut (escribe 'salir' para terminar) ----")
	fmt.Fprintln(out, "Comandos: /lang <tag>, /history, /insights")
	for {
		fmt.Fprint(out, "Tu > ")
		line, err := reader.ReadString('\n')
		text := strings.TrimSpace(line)
		if err != nil && text == "" {
			if err == io.EOF {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("leer input: %w", err)
		}

		switch {
		case text == "":
			continue
		case strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit"):
			fmt.Fprintln(out, "Cuidate. Aqui estare cuando quieras hablar.")
			return nil
		case strings.HasPrefix(text, "/lang"):
			tag := strings.TrimSpace(strings.TrimPrefix(text, "/lang"))
			if tag == "" {
				fmt.Fprintf(out, "Idioma actual: %s (%s)\n", session.Locale(), llm.LanguageName(session.Locale()))
				continue
			}
			session.SetLocale(tag)
			fmt.Fprintf(out, "Idioma: %s (%s)\n", tag, llm.LanguageName(tag))
			continue
		case text == "/history":
			printHistory(out, session)
			continue
		case text == "/insights":
			printInsights(out, insights.Summarize(session.History()))
			continue
		}

		turn, err := session.ProcessTurn(ctx, text)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if turn.Classification != nil && turn.Intent == "" && !turn.Crisis {
			fmt.Fprintf(out, "[%s/%s %.2f %v]\n", turn.Classification.Emotion, turn.Classification.Intensity, turn.Classification.Confidence, turn.Classification.Topics)
		}
		fmt.Fprintf(out, "HearMeOut > %s\n", turn.ResponseText)
	}
}

func printHistory(out io.Writer, session *service.ConversationSession) {
	history := session.History()
	if len(history) == 0 {
		fmt.Fprintln(out, "(sin historial)")
		return
	}
	for i, t := range history {
		fmt.Fprintf(out, "%d. Tu: %s\n   HearMeOut: %s\n", i+1, t.UserText, t.ResponseText)
	}
}

func printInsights(out io.Writer, ci domain.ConversationInsights) {
	if ci.TurnCount == 0 {
		fmt.Fprintln(out, "(todavia no hay suficiente conversacion)")
		return
	}
	fmt.Fprintf(out, "Turnos: %d, emocion dominante: %s\n", ci.TurnCount, ci.DominantEmotion)
	for _, in := range ci.Insights {
		fmt.Fprintf(out, "- %s: %s\n", in.Title, in.Content)
	}
	for _, rec := range ci.Recommendations {
		fmt.Fprintf(out, "* %s\n", rec)
	}
}
