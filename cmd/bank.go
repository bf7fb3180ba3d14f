package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arima/quizdeck/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Question bank tools",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <source>",
	Short: "Validate a question bank and print its breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var loader bank.Loader
		questions, err := loader.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		byTopic := make(map[string]int)
		byType := make(map[bank.QuestionType]int)
		for i := range questions {
			byTopic[questions[i].Topic]++
			byType[questions[i].Type]++
		}

		fmt.Printf("%s: %d questions, valid\n\n", args[0], len(questions))

		fmt.Println("By type:")
		for _, t := range []bank.QuestionType{bank.TypeSingle, bank.TypeMulti, bank.TypeDragDrop} {
			if byType[t] > 0 {
				fmt.Printf("  %-10s %d\n", t, byType[t])
			}
		}

		topics := make([]string, 0, len(byTopic))
		for t := range byTopic {
			topics = append(topics, t)
		}
		sort.Strings(topics)

		fmt.Println("\nBy topic:")
		for _, t := range topics {
			fmt.Printf("  %-30s %d\n", t, byTopic[t])
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
}
