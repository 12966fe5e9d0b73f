package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alt-project/phonectl/internal/output"
	"github.com/alt-project/phonectl/internal/usecase"
)

var batchCmd = &cobra.Command{
	Use:   "batch [<phone>...]",
	Short: "Look up multiple phone numbers",
	Long: `Look up several phone numbers in one run. Numbers are processed
sequentially; numbers that match no account are reported as not found,
any other failure aborts the batch.

Examples:
  phonectl batch +14155552671 +4915123456789
  phonectl batch --file numbers.txt
  phonectl batch --file numbers.txt --json`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("file", "f", "", "file with one phone number per line")
}

func runBatch(cmd *cobra.Command, args []string) error {
	numbers := append([]string(nil), args...)

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		fromFile, err := readPhoneFile(file)
		if err != nil {
			return err
		}
		numbers = append(numbers, fromFile...)
	}

	if len(numbers) == 0 {
		return fmt.Errorf("no phone numbers given: pass them as arguments or via --file")
	}

	uc := usecase.NewLookupBatch(newLookupUsecase(), logger)
	result, err := uc.Execute(cmd.Context(), numbers)
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printer := newPrinter(cmd)

		if len(result.Found) > 0 {
			table := output.NewTable(cmd.OutOrStdout(), []string{"PHONE", "USER ID", "EMAIL", "VERIFIED"})
			for _, record := range result.Found {
				table.AddRow([]string{
					record.PhoneNumber,
					record.UserID,
					record.Email,
					boolString(record.PhoneVerified),
				})
			}
			table.Render()
		}

		for _, phone := range result.NotFound {
			printer.Warning("no account for %s", phone)
		}
		printer.Info("%d found, %d not found", len(result.Found), len(result.NotFound))
	}

	if len(result.Found) == 0 {
		return fmt.Errorf("no matching accounts found")
	}
	return nil
}

// readPhoneFile reads one phone number per line, skipping blank lines
// and # comments.
func readPhoneFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading phone number file: %w", err)
	}
	defer f.Close()

	var numbers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numbers = append(numbers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading phone number file: %w", err)
	}
	return numbers, nil
}
