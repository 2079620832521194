// Package alarm is the wake-up facility behind reminders: it holds at most one
// pending one-shot alarm per key and delivers the alarm's payload when its
// time comes.
//
// The in-process implementation keeps timers in memory, so pending alarms do
// not survive a restart; the re-arm job in the service layer restores them.
package alarm
