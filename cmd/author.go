package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/authoring"
	"github.com/abhisek/quizdeck/internal/draft"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screens/editor"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

var authorCmd = &cobra.Command{
	Use:   "author <quizID>",
	Short: "Edit the questions of a quiz",
	Long: `Open the question editor for a quiz.

The editor adds, re-kinds, reorders and deletes questions and previews
each one as a learner would see it. Nothing reaches the platform until
the draft is saved, and a draft with an invalid question is never sent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, envOptions{requireAPI: true, withLLM: true})
		if err != nil {
			return err
		}
		defer e.Close()

		return app.Run(cmd.Context(), editor.New(args[0], e.homeDeps().EditorDeps()))
	},
}

var authorImportCmd = &cobra.Command{
	Use:   "import <quizID> <file>",
	Short: "Append questions from a JSON file",
	Long: `Append questions to a quiz from a JSON file holding one question, an
array of questions, or a whole quiz document. Every question is validated
before anything is sent.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		questions, err := authoring.ParseImport(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}

		return withEditor(cmd, args[0], func(_ context.Context, ed *authoring.Editor) error {
			for _, q := range questions {
				if _, err := ed.Insert(q); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var authorDraftCmd = &cobra.Command{
	Use:   "draft <quizID>",
	Short: "Draft a question with an LLM and append it",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthorDraft,
}

var authorDeleteCmd = &cobra.Command{
	Use:   "delete <quizID> <questionID>",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, args[0], func(_ context.Context, ed *authoring.Editor) error {
			return ed.Delete(args[1])
		})
	},
}

var authorReorderCmd = &cobra.Command{
	Use:   "reorder <quizID> <questionID>...",
	Short: "Set the order of every question",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quizID, order := args[0], args[1:]

		e, err := loadEnv(cmd, envOptions{requireAPI: true})
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		q, err := e.service.FetchQuiz(ctx, quizID)
		if err != nil {
			return err
		}
		current := make([]string, len(q.Questions))
		for i, question := range q.Questions {
			current[i] = question.ID
		}
		if !samePermutation(current, order) {
			return fmt.Errorf("order must list each of the %d question ids exactly once: %s",
				len(current), strings.Join(current, " "))
		}
		if err := e.service.ReorderQuestions(ctx, quizID, order); err != nil {
			return err
		}
		fmt.Println("Order saved.")
		return nil
	},
}

func init() {
	authorDraftCmd.Flags().String("kind", string(quiz.KindSingleChoice), "Question kind: "+kindList())
	authorDraftCmd.Flags().String("topic", "", "What the question is about (required)")
	authorDraftCmd.Flags().String("audience", "", "Who the question is for, e.g. 'grade 5'")
	authorDraftCmd.Flags().String("notes", "", "Extra instructions for the model")
	authorDraftCmd.Flags().BoolP("yes", "y", false, "Append without asking")
	_ = authorDraftCmd.MarkFlagRequired("topic")

	authorCmd.AddCommand(authorImportCmd)
	authorCmd.AddCommand(authorDraftCmd)
	authorCmd.AddCommand(authorDeleteCmd)
	authorCmd.AddCommand(authorReorderCmd)
}

func runAuthorDraft(cmd *cobra.Command, args []string) error {
	kind := quiz.Kind(flagString(cmd, "kind"))
	if !kind.Supported() {
		return fmt.Errorf("unknown kind %q: use one of %s", kind, kindList())
	}

	e, err := loadEnv(cmd, envOptions{requireAPI: true, withLLM: true})
	if err != nil {
		return err
	}
	defer e.Close()
	if e.drafter == nil {
		return fmt.Errorf("drafting needs an LLM provider: set QUIZDECK_LLM_PROVIDER and its API key")
	}

	ctx := cmd.Context()
	q, err := e.service.FetchQuiz(ctx, args[0])
	if err != nil {
		return err
	}
	ed := authoring.NewEditor(q.ID, q.Questions, authoring.WithLogger(e.logger))

	var prior []string
	for _, existing := range q.Questions {
		prior = append(prior, existing.Text)
	}

	fmt.Printf("Drafting a %s question for %q...\n\n", kind.Label(), q.Title)
	drafted, err := e.drafter.Draft(ctx, draft.Input{
		QuizID:         q.ID,
		Kind:           kind,
		Topic:          flagString(cmd, "topic"),
		Audience:       flagString(cmd, "audience"),
		Notes:          flagString(cmd, "notes"),
		PriorQuestions: prior,
	})
	if err != nil {
		return fmt.Errorf("draft: %w", err)
	}

	preview := authoring.PreviewQuestion(drafted, widgets.Factory{TextLimit: textLimit})
	fmt.Println(preview.View(76))

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Print("Append this question? [y/N] ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			fmt.Println("Discarded.")
			return nil
		}
	}

	if _, err := ed.Insert(drafted); err != nil {
		return err
	}
	return saveDraft(ctx, ed, e)
}

// withEditor loads quizID into an editor, applies edit and saves.
func withEditor(cmd *cobra.Command, quizID string, edit func(context.Context, *authoring.Editor) error) error {
	e, err := loadEnv(cmd, envOptions{requireAPI: true})
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	q, err := e.service.FetchQuiz(ctx, quizID)
	if err != nil {
		return err
	}
	ed := authoring.NewEditor(q.ID, q.Questions, authoring.WithLogger(e.logger))
	if err := edit(ctx, ed); err != nil {
		return err
	}
	return saveDraft(ctx, ed, e)
}

func saveDraft(ctx context.Context, ed *authoring.Editor, e *env) error {
	plan, err := ed.Save(ctx, e.service)
	if err != nil {
		return err
	}
	if plan.Empty() {
		fmt.Println("Nothing to save.")
		return nil
	}
	fmt.Printf("Saved: %d created, %d updated, %d deleted", len(plan.Creates), len(plan.Updates), len(plan.Deletes))
	if plan.Reorder {
		fmt.Print(", reordered")
	}
	fmt.Println(".")
	return nil
}

func samePermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

func kindList() string {
	var names []string
	for _, k := range quiz.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
