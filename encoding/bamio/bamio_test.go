package bamio

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/seqlib/lcadre/complexity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ complexity.RecordSource = (*Reader)(nil)

func TestInferFormat(t *testing.T) {
	f, err := InferFormat("/data/sample.bam")
	assert.NoError(t, err)
	assert.Equal(t, BAM, f)

	f, err = InferFormat("s3://bucket/sample.BAM")
	assert.NoError(t, err)
	assert.Equal(t, BAM, f)

	f, err = InferFormat("sample.sam")
	assert.NoError(t, err)
	assert.Equal(t, SAM, f)

	_, err = InferFormat("sample.cram")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRAM")

	_, err = InferFormat("sample.txt")
	require.Error(t, err)

	_, err = InferFormat("sample")
	require.Error(t, err)
}

func writeTestSAM(t *testing.T, dir string) string {
	lines := []string{
		strings.Join([]string{"@HD", "VN:1.3", "SO:coordinate"}, "\t"),
		strings.Join([]string{"@SQ", "SN:chr1", "LN:1000"}, "\t"),
		// Pair A, mates separated by other records.
		strings.Join([]string{"A", "99", "chr1", "10", "60", "10M", "=", "60", "60", "ACGTACGTAC", "FFFFFFFFFF"}, "\t"),
		// Orphan: mate never appears.
		strings.Join([]string{"B", "99", "chr1", "20", "60", "10M", "=", "500", "490", "ACGTACGTAC", "FFFFFFFFFF"}, "\t"),
		// Secondary alignment of A, must be ignored by the estimator.
		strings.Join([]string{"A", "355", "chr1", "40", "0", "10M", "=", "60", "30", "ACGTACGTAC", "FFFFFFFFFF"}, "\t"),
		strings.Join([]string{"A", "147", "chr1", "60", "60", "10M", "=", "10", "-60", "ACGTACGTAC", "FFFFFFFFFF"}, "\t"),
	}
	path := filepath.Join(dir, "test.sam")
	require.NoError(t, ioutil.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func TestReaderScansSAM(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTestSAM(t, tempDir)

	r, err := Open(context.Background(), path, InferFromPath)
	require.NoError(t, err)
	assert.Equal(t, 1, len(r.Header().Refs()))

	var names []string
	for r.Scan() {
		names = append(names, r.Record().Name)
	}
	assert.NoError(t, r.Err())
	assert.Equal(t, []string{"A", "B", "A", "A"}, names)
	assert.NoError(t, r.Close())
}

func TestReaderFeedsEstimator(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := writeTestSAM(t, tempDir)

	r, err := Open(context.Background(), path, SAM)
	require.NoError(t, err)
	estimator := complexity.NewEstimator()
	require.NoError(t, estimator.Accumulate(r))
	require.NoError(t, r.Close())

	result, err := estimator.Result(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pairs)
	assert.Equal(t, int64(1), result.DistinctSignatures)
	assert.Equal(t, 1, result.Orphans)
	assert.Equal(t, 1, result.SecondarySupplementary)
	assert.Equal(t, 1.0, result.Chao1)
	assert.Equal(t, 1.0, result.ExtrapolatedSignatures)
}

func TestOpenMissingFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	_, err := Open(context.Background(), filepath.Join(tempDir, "absent.bam"), InferFromPath)
	require.Error(t, err)
}
