package format

import (
	"strconv"

	"github.com/gogpu/ggchart/internal/cache"
)

type nameKey struct {
	prefix     string
	serieIndex int
	dataIndex  int
}

var names = cache.New[nameKey, string](8192)

// LabelObjectName returns the pool name of the label for a data point:
// "<prefix>_<serieIndex>_<dataIndex>".
func LabelObjectName(prefix string, serieIndex, dataIndex int) string {
	return names.GetOrCreate(nameKey{prefix, serieIndex, dataIndex}, func() string {
		b := make([]byte, 0, len(prefix)+12)
		b = append(b, prefix...)
		b = append(b, '_')
		b = strconv.AppendInt(b, int64(serieIndex), 10)
		b = append(b, '_')
		b = strconv.AppendInt(b, int64(dataIndex), 10)
		return string(b)
	})
}

// RootObjectName returns the name of a serie root container: "<prefix>_<serieIndex>".
func RootObjectName(prefix string, serieIndex int) string {
	return prefix + "_" + strconv.Itoa(serieIndex)
}
