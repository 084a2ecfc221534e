// SPDX-License-Identifier: GPL-3.0-or-later

package verifybamid

import "github.com/seqreport/seqreport/report"

// scaleBy returns a modifier multiplying numeric values; NA and raw
// strings pass through untouched.
func scaleBy(mult float64) func(report.Value) report.Value {
	return func(v report.Value) report.Value {
		if f, ok := v.Float(); ok {
			return report.Num(f * mult)
		}
		return v
	}
}

// colDefaults is the base rendering for the contamination estimates:
// 0-1 scale values shown as percentages.
var colDefaults = report.Defaults{
	Min:    0,
	Max:    100,
	Suffix: "%",
	Format: "%.3f",
	Scale:  "OrRd",
	Modify: scaleBy(100),
}

// generalStatsColumns are the columns contributed to the general
// statistics table at the top of the report.
func (c *Collector) generalStatsColumns() []report.Column {
	return []report.Column{
		colDefaults.Apply(report.Column{
			ID:          "CHIPMIX",
			Title:       "Contamination (S+A)",
			Description: "VerifyBamID: CHIPMIX - Sequence+array estimate of contamination (NA if the external genotype is unavailable) (0-1 scale)",
			Hidden:      c.hideChipCols,
		}),
		colDefaults.Apply(report.Column{
			ID:          "FREEMIX",
			Title:       "Contamination (S)",
			Description: "VerifyBamID: FREEMIX - Sequence-only estimate of contamination (0-1 scale).",
		}),
	}
}

// tableColumns is the full column set of the detail table. Column
// descriptions are taken from the VerifyBamID documentation. Visibility
// is decided once over the full dataset: chip columns follow the chip
// flag, several optional columns hide when every record holds NA.
func (c *Collector) tableColumns(data report.Dataset) []report.Column {
	return []report.Column{
		{
			ID:          "RG",
			Title:       "Read Group",
			Description: "ReadGroup ID of sequenced lane.",
			Hidden:      report.AllEqual(data, "RG", report.Str("ALL")),
		},
		{
			ID:          "CHIP_ID",
			Title:       "Chip ID",
			Description: "ReadGroup ID of sequenced lane.",
			Hidden:      c.hideChipCols,
		},
		{
			ID:          "#SNPS",
			Title:       "SNPS",
			Description: "# SNPs passing the criteria from the VCF file",
			Format:      "%.0f",
		},
		{
			ID:          "#READS",
			Title:       "M Reads",
			Description: "Million reads loaded from the BAM file",
			Format:      "%.1f",
			Modify:      scaleBy(0.000001),
			SharedKey:   "read_count",
		},
		{
			ID:          "AVG_DP",
			Title:       "Average Depth",
			Description: "Average sequencing depth at the sites in the VCF file",
		},
		colDefaults.Apply(report.Column{
			ID:          "FREEMIX",
			Title:       "Contamination (Seq)",
			Description: "VerifyBamID: FREEMIX - Sequence-only estimate of contamination (0-1 scale).",
		}),
		{
			ID:          "FREELK1",
			Title:       "FREELK1",
			Format:      "%.0f",
			Description: "Maximum log-likelihood of the sequence reads given estimated contamination under sequence-only method",
		},
		{
			ID:          "FREELK0",
			Title:       "FREELK0",
			Format:      "%.0f",
			Description: "Log-likelihood of the sequence reads given no contamination under sequence-only method",
		},
		{
			ID:          "FREE_RH",
			Title:       "FREE_RH",
			Description: "Estimated reference bias parameter Pr(refBase|HET) (when --free-refBias or --free-full is used)",
			Hidden:      report.AllNA(data, "FREE_RH"),
		},
		{
			ID:          "FREE_RA",
			Title:       "FREE_RA",
			Description: "Estimated reference bias parameter Pr(refBase|HOMALT) (when --free-refBias or --free-full is used)",
			Hidden:      report.AllNA(data, "FREE_RA"),
		},
		colDefaults.Apply(report.Column{
			ID:          "CHIPMIX",
			Title:       "Contamination S+A",
			Description: "VerifyBamID: CHIPMIX - Sequence+array estimate of contamination (NA if the external genotype is unavailable) (0-1 scale)",
			Hidden:      c.hideChipCols,
		}),
		{
			ID:          "CHIPLK1",
			Title:       "CHIPLK1",
			Description: "Maximum log-likelihood of the sequence reads given estimated contamination under sequence+array method (NA if the external genotypes are unavailable)",
			Hidden:      c.hideChipCols,
		},
		{
			ID:          "CHIPLK0",
			Title:       "CHIPLK0",
			Description: "Log-likelihood of the sequence reads given no contamination under sequence+array method (NA if the external genotypes are unavailable)",
			Hidden:      c.hideChipCols,
		},
		{
			ID:          "CHIP_RH",
			Title:       "CHIP_RH",
			Description: "Estimated reference bias parameter Pr(refBase|HET) (when --chip-refBias or --chip-full is used)",
			Hidden:      c.hideChipCols,
		},
		{
			ID:          "CHIP_RA",
			Title:       "CHIP_RA",
			Description: "Estimated reference bias parameter Pr(refBase|HOMALT) (when --chip-refBias or --chip-full is used)",
			Hidden:      c.hideChipCols,
		},
		{
			ID:          "DPREF",
			Title:       "DPREF",
			Description: "Depth (Coverage) of HomRef site (based on the genotypes of (SELF_SM/BEST_SM), passing mapQ, baseQual, maxDepth thresholds.",
			Hidden:      report.AllNA(data, "DPREF"),
		},
		{
			ID:          "RDPHET",
			Title:       "RDPHET",
			Description: "DPHET/DPREF, Relative depth to HomRef site at Heterozygous site.",
			Hidden:      report.AllNA(data, "RDPHET"),
		},
		{
			ID:          "RDPALT",
			Title:       "RDPALT",
			Description: "DPHET/DPREF, Relative depth to HomRef site at HomAlt site.",
			Hidden:      report.AllNA(data, "RDPALT"),
		},
	}
}
