package analytics

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindNotFound, KindOf(notFoundErr("region %s not found", "11010")))
	assert.Equal(t, KindValidation, KindOf(validationErr("bad input")))
	assert.Equal(t, KindUpstream, KindOf(upstreamErr(eris.New("timeout"), "fetch region")))
	assert.Equal(t, KindEmpty, KindOf(emptyErr("nothing qualified")))
	assert.Equal(t, Kind(""), KindOf(eris.New("plain error")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestError_MessageIncludesCause(t *testing.T) {
	t.Parallel()

	err := upstreamErr(eris.New("connect timeout"), "fetch region %s", "11010")

	assert.Contains(t, err.Error(), "upstream_unavailable")
	assert.Contains(t, err.Error(), "fetch region 11010")
	assert.Contains(t, err.Error(), "connect timeout")
}
