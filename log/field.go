package log

import (
	"github.com/isle-engine/omni/internal/kv"
)

type (
	Field = kv.KeyValue
)
