// internal/component/timer.go
package component

// TimerHandle — ссылка на зарегистрированное событие часов.
// Нулевое значение означает «таймера нет».
type TimerHandle uint64
