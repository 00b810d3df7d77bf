// Package invariant ошибки нарушения инвариантов владения узлами.
//
// Такие нарушения являются логическими ошибками программы, а не штатными
// состояниями: структуры данных выбрасывают их паникой. Пустая коллекция
// нарушением не является и отдаётся обычным результатом "нет значения".
package invariant

import (
	"github.com/sirkon/errors"
)

const (
	// ErrorViolated общий вид всех нарушений инвариантов. Любая ошибка
	// построенная поверх New удовлетворяет errors.Is(err, ErrorViolated).
	ErrorViolated errors.Const = "invariant violated"

	// ErrorStaleHandle обращение по ручке узла, который уже освобождён
	// или никогда не существовал.
	ErrorStaleHandle errors.Const = "stale node handle"

	// ErrorBorrowConflict попытка получить доступ к узлу или изменить структуру
	// в то время как действует несовместимый с этим доступ.
	ErrorBorrowConflict errors.Const = "borrow conflict"

	// ErrorNotBorrowed освобождение доступа, который не удерживается.
	ErrorNotBorrowed errors.Const = "access is not held"

	// ErrorDoubleRelease повторное освобождение владения.
	ErrorDoubleRelease errors.Const = "double release"

	// ErrorUseAfterRelease использование после освобождения владения.
	ErrorUseAfterRelease errors.Const = "use after release"
)

// New ошибка нарушения инварианта данного вида. Подробности и контекст
// добавляются обёрткой:
//
//	errors.Wrap(invariant.New(invariant.ErrorStaleHandle), "get node").Int("index", i)
func New(kind errors.Const) error {
	return violation{kind: kind}
}

// Catch выполняет f и возвращает нарушение инварианта, если f завершилась
// паникой с ним. Прочие паники пробрасываются дальше.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok || !errors.Is(e, ErrorViolated) {
			panic(r)
		}

		err = e
	}()

	f()
	return nil
}

type violation struct {
	kind errors.Const
}

func (v violation) Error() string {
	return string(v.kind)
}

// Is для совместимости с errors.Is: нарушение соответствует и своему виду, и общему.
func (v violation) Is(target error) bool {
	switch target {
	case ErrorViolated, v.kind:
		return true
	default:
		return false
	}
}
