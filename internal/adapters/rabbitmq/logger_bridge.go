package rabbitmq

import (
	"fmt"

	"property-search-service/internal/core/port"
	"property-search-service/pkg/rabbitmq/rabbitmq_common"
)

// AMQPLoggerBridge пишет сообщения пакета rabbitmq (пары ключ-значение) в LoggerPort.
type AMQPLoggerBridge struct {
	target port.LoggerPort
}

func NewPkgLoggerBridge(logger port.LoggerPort) rabbitmq_common.Logger {
	return &AMQPLoggerBridge{target: logger}
}

// kvToFields собирает поля из чередующихся ключей и значений.
// Ключ не строка приводится через fmt, значение без пары пишется под ключом "!BADKEY".
func kvToFields(kv []interface{}) port.Fields {
	if len(kv) == 0 {
		return nil
	}
	fields := make(port.Fields, (len(kv)+1)/2)
	for len(kv) > 0 {
		if len(kv) == 1 {
			fields["!BADKEY"] = kv[0]
			break
		}
		key, ok := kv[0].(string)
		if !ok {
			key = fmt.Sprint(kv[0])
		}
		fields[key] = kv[1]
		kv = kv[2:]
	}
	return fields
}

func (b *AMQPLoggerBridge) Debug(msg string, keysAndValues ...interface{}) {
	b.target.Debug(msg, kvToFields(keysAndValues))
}

func (b *AMQPLoggerBridge) Info(msg string, keysAndValues ...interface{}) {
	b.target.Info(msg, kvToFields(keysAndValues))
}

func (b *AMQPLoggerBridge) Warn(msg string, keysAndValues ...interface{}) {
	b.target.Warn(msg, kvToFields(keysAndValues))
}

func (b *AMQPLoggerBridge) Error(err error, msg string, keysAndValues ...interface{}) {
	b.target.Error(msg, err, kvToFields(keysAndValues))
}
