package model

// 物理常量
const GAcceleration = 9.81 // 重力加速度 m/s²

// 单位换算
const (
	PaPerBar  = 100000
	BarPerMPa = 10
	MMPerM    = 1000
	MPerKM    = 1000
	SecPerH   = 3600
	PsiPerBar = 14.5038
)
