//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端行为运行（用于本地调试触摸输入）
const MobileEmulateEnv = "COUNTDOWN_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 移动端没有键盘，不处理 F11 / Escape 快捷键
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
