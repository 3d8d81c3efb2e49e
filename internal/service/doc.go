// Package service 實作聊天室中繼的核心：連線註冊表、房間表、
// 成員列表推導、廣播引擎與會談協定處理器。
//
// 所有共享狀態都封裝在各自的結構裡並以鎖保護，
// 不透過裸露的全域變數存取。
package service
