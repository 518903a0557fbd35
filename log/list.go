package log

import (
	"context"

	"github.com/isle-engine/omni/internal/kv"
	"github.com/isle-engine/omni/trace"
)

// List makes trace.List with logging events from details
func List(l Logger, d trace.Detailer) (t trace.List) {
	t.OnInsert = func(info trace.ListInsertInfo) {
		if d.Details()&trace.ListMutationEvents == 0 {
			return
		}
		ctx := with(context.Background(), TRACE, "omni", "list", "insert")
		l.Log(ctx, "inserted",
			kv.String("list", info.Name),
			kv.Int("index", info.Index),
			kv.Int("count", info.Count),
		)
	}
	t.OnRemove = func(info trace.ListRemoveInfo) {
		if d.Details()&trace.ListMutationEvents == 0 {
			return
		}
		ctx := with(context.Background(), TRACE, "omni", "list", "remove")
		if !info.Found {
			l.Log(ctx, "remove missed",
				kv.String("list", info.Name),
				kv.Int("count", info.Count),
			)

			return
		}
		l.Log(ctx, "removed",
			kv.String("list", info.Name),
			kv.Int("count", info.Count),
		)
	}
	t.OnDetach = func(info trace.ListDetachInfo) {
		if d.Details()&trace.ListMutationEvents == 0 {
			return
		}
		ctx := with(context.Background(), TRACE, "omni", "list", "detach")
		l.Log(ctx, "detached",
			kv.String("list", info.Name),
			kv.Bool("found", info.Found),
			kv.Int("count", info.Count),
		)
	}
	t.OnDeleteAll = func(info trace.ListDeleteAllStartInfo) func(trace.ListDeleteAllDoneInfo) {
		if d.Details()&trace.ListLifeCycleEvents == 0 {
			return nil
		}
		op := "clear"
		if info.Final {
			op = "destroy"
		}
		ctx := with(context.Background(), DEBUG, "omni", "list", op)
		name := info.Name
		l.Log(ctx, op+" starting...",
			kv.String("list", name),
			kv.Int("count", info.Count),
		)

		return func(info trace.ListDeleteAllDoneInfo) {
			l.Log(ctx, op+" done",
				kv.String("list", name),
				kv.Int("destroyed", info.Destroyed),
			)
		}
	}
	t.OnCursorDelete = func(info trace.ListCursorDeleteInfo) {
		if d.Details()&trace.CursorEvents == 0 {
			return
		}
		ctx := with(context.Background(), TRACE, "omni", "list", "cursor")
		l.Log(ctx, "cursor removed current",
			kv.String("list", info.Name),
			kv.Bool("detached", info.Detached),
			kv.Int("count", info.Count),
		)
	}
	t.OnCursorError = func(info trace.ListCursorErrorInfo) {
		if d.Details()&trace.CursorEvents == 0 {
			return
		}
		ctx := with(context.Background(), WARN, "omni", "list", "cursor")
		var call string
		if info.Call != nil {
			call = info.Call.FunctionID()
		}
		l.Log(ctx, "cursor misuse",
			kv.Error(info.Error),
			kv.String("list", info.Name),
			kv.String("call", call),
		)
	}

	return t
}
