package main

/*
  lcadre estimates library complexity and duplication rate from the
  alignments of a partial sequencing run, and extrapolates the
  duplicate rate expected at a larger read-pair count.  For the
  methodology, see github.com/seqlib/lcadre/complexity/doc.go
*/

import (
	"flag"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/seqlib/lcadre/complexity"
	"github.com/seqlib/lcadre/encoding/bamio"
)

var (
	inputFile   = flag.String("input", "", "Input alignment filename (.bam or .sam, local or s3://)")
	fileType    = flag.String("file-type", "infer", "Input file type. Value is 'bam', 'sam', or 'infer'.")
	targetPairs = flag.Int64("target-pairs", 100000000, "Target count of read pairs for extrapolation")
	metricsFile = flag.String("metrics", "", "Output metrics TSV file")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		a := flag.Args()
		log.Fatalf("unparsed flags, please check flag syntax: '%s'", strings.Join(a[len(a)-flag.NArg():], " "))
	}
	if *inputFile == "" {
		log.Fatalf("-input is required")
	}
	if *targetPairs <= 0 {
		log.Fatalf("-target-pairs must be a positive integer, got %d", *targetPairs)
	}
	format := bamio.InferFromPath
	switch *fileType {
	case "bam":
		format = bamio.BAM
	case "sam":
		format = bamio.SAM
	case "infer":
	default:
		log.Fatalf("-file-type must be 'bam', 'sam' or 'infer', got %q", *fileType)
	}

	ctx := vcontext.Background()
	reader, err := bamio.Open(ctx, *inputFile, format)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("lcadre: library complexity and duplication rate estimation")
	log.Printf("reading alignment file %s", *inputFile)

	estimator := complexity.NewEstimator()
	if err := estimator.Accumulate(reader); err != nil {
		log.Fatalf("error reading %s: %v", *inputFile, err)
	}
	if err := reader.Close(); err != nil {
		log.Fatalf("error closing %s: %v", *inputFile, err)
	}

	result, err := estimator.Result(*targetPairs)
	if err != nil {
		log.Fatalf("%v", err)
	}
	report(result)

	if *metricsFile != "" {
		if err := writeMetrics(result, *metricsFile); err != nil {
			log.Fatalf("%v", err)
		}
	}
	log.Debug.Printf("exiting")
}

func report(r *complexity.Result) {
	if r.Orphans > 0 {
		log.Error.Printf("dropped %d reads whose mate never appeared in the input", r.Orphans)
	}
	log.Printf("found %d read pairs", r.Pairs)
	log.Printf("found %d distinct signatures", r.DistinctSignatures)
	log.Printf("found %d signatures that occurred exactly once", r.Singletons)
	log.Printf("found %d signatures that occurred exactly twice", r.Doubletons)
	log.Printf("signature count distribution: min %.0f median %.1f mean %.2f max %.0f",
		r.CountSummary.Min, r.CountSummary.Median, r.CountSummary.Mean, r.CountSummary.Max)
	log.Printf("observed duplicate rate: %0.3f", r.ObservedDupRate)
	log.Printf("##### Chao1-based estimates #####")
	log.Printf("library complexity estimate: %.0f", r.Chao1)
	log.Printf("estimated signatures at %d read pairs: %.0f", r.TargetPairs, r.ExtrapolatedSignatures)
	log.Printf("extrapolated duplication rate: %0.3f", r.ExtrapolatedDupRate)
	if r.ACEValid {
		log.Printf("##### ACE-based estimates #####")
		log.Printf("library complexity estimate: %.0f", r.ACE)
		log.Printf("estimated signatures at %d read pairs: %.0f", r.TargetPairs, r.ACEExtrapolatedSignatures)
		log.Printf("extrapolated duplication rate: %0.3f", r.ACEExtrapolatedDupRate)
	} else {
		log.Printf("ACE estimate undefined for this input, reporting Chao1 only")
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writeMetrics(r *complexity.Result, path string) (err error) {
	ctx := vcontext.Background()
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "could not create metrics file:", path)
	}
	defer file.CloseAndReport(ctx, out, &err)

	w := tsv.NewWriter(out.Writer(ctx))
	w.WriteString("READ_PAIRS\tDISTINCT_SIGNATURES\tSINGLETONS\tDOUBLETONS\tORPHANS\t" +
		"OBSERVED_DUP_RATE\tCHAO1\tCHAO1_TARGET_SIGNATURES\tCHAO1_TARGET_DUP_RATE\t" +
		"ACE\tACE_TARGET_SIGNATURES\tACE_TARGET_DUP_RATE")
	if err = w.EndLine(); err != nil {
		return errors.E(err, "error writing to metrics file:", path)
	}
	w.WriteString(strconv.FormatInt(r.Pairs, 10))
	w.WriteString(strconv.FormatInt(r.DistinctSignatures, 10))
	w.WriteString(strconv.FormatInt(r.Singletons, 10))
	w.WriteString(strconv.FormatInt(r.Doubletons, 10))
	w.WriteString(strconv.Itoa(r.Orphans))
	w.WriteString(formatFloat(r.ObservedDupRate))
	w.WriteString(formatFloat(r.Chao1))
	w.WriteString(formatFloat(r.ExtrapolatedSignatures))
	w.WriteString(formatFloat(r.ExtrapolatedDupRate))
	if r.ACEValid {
		w.WriteString(formatFloat(r.ACE))
		w.WriteString(formatFloat(r.ACEExtrapolatedSignatures))
		w.WriteString(formatFloat(r.ACEExtrapolatedDupRate))
	} else {
		w.WriteString("NA")
		w.WriteString("NA")
		w.WriteString("NA")
	}
	if err = w.EndLine(); err != nil {
		return errors.E(err, "error writing to metrics file:", path)
	}
	if err = w.Flush(); err != nil {
		return errors.E(err, "error writing to metrics file:", path)
	}
	return nil
}
