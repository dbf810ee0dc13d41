package notify

import "fyne.io/fyne/v2"

// Sender posts desktop notifications. fyne.App satisfies it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// SystemSink shows the notice as a desktop notification.
type SystemSink struct {
	sender Sender
}

// NewSystemSink creates a sink posting through sender.
func NewSystemSink(sender Sender) *SystemSink {
	return &SystemSink{sender: sender}
}

// Notify implements Sink.
func (sink *SystemSink) Notify(notice Notice) error {
	if sink.sender == nil {
		return nil
	}
	sink.sender.SendNotification(fyne.NewNotification(notice.Title, notice.Message))
	return nil
}
