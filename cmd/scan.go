package cmd

import (
	"github.com/Matt115A/NuCSI/internal/nucsi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scanCmd is for extracting the sequences between the two anchor motifs
// from every read and building a consensus of the extracted pool
var scanCmd = &cobra.Command{
	Use:                        "scan",
	Short:                      "Scan reads for sequences between the upstream and downstream motifs",
	Run:                        nucsi.ScanCmd,
	SuggestionsMinimumDistance: 4,
	Long: `
Scan each read in the input FASTQ files for the upstream and downstream anchor
motifs, in both the forward and reverse complement orientations, and extract
the sequence between each anchor pair.

Extracted sequences are pooled across files, aligned with MAFFT, and
summarized into a positional base-frequency matrix and consensus.`,
}

// set flags
func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("reads-dir", "r", "", "directory with input FASTQ files")
	scanCmd.Flags().IntP("max-length", "l", 40, "maximum length of an extracted sequence")

	viper.BindPFlag("reads-dir", scanCmd.Flags().Lookup("reads-dir"))
	viper.BindPFlag("max-length", scanCmd.Flags().Lookup("max-length"))
}
