package provisioning

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordStepMetric(t *testing.T) {
	stepsTotal.Reset()
	stepDuration.Reset()

	recordStepMetric("mount-fsx", resultSuccess, 1.5)
	recordStepMetric("mount-fsx", resultSuccess, 0.5)
	recordStepMetric("apply-hotfix", resultFailure, 0.1)
	recordStepMetric("mount-s3", resultSkipped, 0)

	success, err := stepsTotal.GetMetricWithLabelValues("mount-fsx", resultSuccess)
	assert.NoError(t, err)
	assert.Equal(t, float64(2), testutil.ToFloat64(success))

	failure, err := stepsTotal.GetMetricWithLabelValues("apply-hotfix", resultFailure)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(failure))

	skipped, err := stepsTotal.GetMetricWithLabelValues("mount-s3", resultSkipped)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(skipped))

	// Skipped steps record no duration samples.
	assert.Equal(t, 2, testutil.CollectAndCount(stepDuration))
}
