package domain

// WorkerState — стадия жизненного цикла версии воркера.
type WorkerState string

const (
	StateInstalling WorkerState = "installing"
	StateInstalled  WorkerState = "installed"
	StateActivating WorkerState = "activating"
	StateActivated  WorkerState = "activated"
	StateRedundant  WorkerState = "redundant"
)

// Manifest — описание релиза статики: версия, префикс бакета и список ресурсов.
type Manifest struct {
	Version string   `yaml:"version" json:"version"`
	Prefix  string   `yaml:"prefix" json:"prefix"`
	Assets  []string `yaml:"assets" json:"assets"`
}

// Типы управляющих сообщений.
const (
	MessageSkipWaiting = "SKIP_WAITING"
)

// ControlMessage — сообщение от страницы (или оператора) контроллеру воркера.
type ControlMessage struct {
	Type string `json:"type"`
}

// Типы уведомлений, которые контроллер рассылает подписчикам.
const (
	NotificationStateChanged      = "STATE_CHANGED"
	NotificationControllerChanged = "CONTROLLER_CHANGED"
)

// Notification — уведомление о смене состояния версии или активного контроллера.
type Notification struct {
	Type    string      `json:"type"`
	Version string      `json:"version"`
	State   WorkerState `json:"state"`
}

// WorkerInfo — состояние одной версии.
type WorkerInfo struct {
	Version string      `json:"version"`
	Bucket  string      `json:"bucket"`
	State   WorkerState `json:"state"`
}

// WorkerStatus — активная, ожидающая и устанавливаемая версии (любая может отсутствовать).
type WorkerStatus struct {
	Active     *WorkerInfo `json:"active,omitempty"`
	Waiting    *WorkerInfo `json:"waiting,omitempty"`
	Installing *WorkerInfo `json:"installing,omitempty"`
}
