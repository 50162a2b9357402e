package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/c4soto/resumemate/internal/jobsearch"
	"github.com/c4soto/resumemate/internal/logger"
)

const (
	PromptApply = "✅ Откликнуться"
	PromptSkip  = "❌ Пропустить"
	PromptNext  = "➡️ Следующая"
	PromptPrev  = "⬅️ Предыдущая"
	PromptExit  = "Выход"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search vacancies matching a resume and page through them",
	Run: func(cmd *cobra.Command, _ []string) {
		search(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("resume", "r", "", "path to a PDF or DOCX resume used to build the query")
	searchCmd.Flags().BoolP("external", "e", false, "search hh.ru instead of the built-in demo postings")
}

func search(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	var resumeText string
	var userSkills []string
	if path := cmd.Flag("resume").Value.String(); path != "" {
		resumeText, userSkills, err = analyzeFile(logger, path)
		if err != nil {
			logger.Fatal("analyzing resume", zap.String("file", path), zap.Error(err))
		}
		logger.Info("resume analyzed", zap.Int("skills", len(userSkills)))
	}

	external := strings.EqualFold(cmd.Flag("external").Value.String(), "true")

	service := newJobSearch(config, logger)
	postings := service.Search(ctx, userSkills, external)
	if len(postings) == 0 {
		logger.Info("exiting", zap.String("reason", "no vacancies found"))
		return
	}

	generator := newLetterGenerator(ctx, config, logger)

	index := 0
	for {
		posting := postings[index]
		fmt.Print(renderPosting(posting, index, len(postings)))

		items := []string{PromptApply, PromptSkip}
		if index > 0 {
			items = append(items, PromptPrev)
		}
		if index+1 < len(postings) {
			items = append(items, PromptNext)
		}
		items = append(items, PromptExit)

		prompt := promptui.Select{
			Label: "Выберите действие",
			Items: items,
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if action == PromptApply {
			letter, err := generator.Generate(ctx, resumeText, userSkills, posting)
			if err != nil {
				logger.Fatal("generating cover letter", zap.Error(err))
			}
			fmt.Printf("\n📝 Сопроводительное письмо для %s (%s):\n\n%s\n", posting.Title, posting.Company, letter)
		}

		next, ok := nextIndex(action, index, len(postings))
		if !ok {
			if action != PromptExit {
				fmt.Println("❌ Больше вакансий нет")
			}
			return
		}
		index = next
	}
}

// nextIndex maps a pager action to the posting shown next. ok=false stops the
// pager. Applying keeps the current posting on screen so the user can still
// page back or exit afterwards.
func nextIndex(action string, index, total int) (next int, ok bool) {
	switch action {
	case PromptSkip, PromptNext:
		if index+1 >= total {
			return index, false
		}
		return index + 1, true
	case PromptPrev:
		return index - 1, true
	case PromptExit:
		return index, false
	default:
		return index, true
	}
}

func renderPosting(posting *jobsearch.Posting, index, total int) string {
	remote := "нет"
	if posting.Remote {
		remote = "да"
	}

	return fmt.Sprintf(`
🔍 Вакансия %d из %d

🏢 %s
🏢 %s
📍 %s (удаленно: %s)
💰 %s
⭐ Match: %d%%

Требования:
%s

🔗 %s
`,
		index+1, total,
		posting.Title,
		posting.Company,
		posting.Location, remote,
		posting.Salary,
		posting.MatchScore,
		posting.Requirements,
		posting.URL,
	)
}
