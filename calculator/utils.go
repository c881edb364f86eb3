package calculator

import "pipecalc/model"

// 单位换算

func PaToBar(pa float64) float64 {
	return pa / model.PaPerBar
}

func BarToPa(bar float64) float64 {
	return bar * model.PaPerBar
}

func BarToMPa(bar float64) float64 {
	return bar / model.BarPerMPa
}

func MMToM(mm float64) float64 {
	return mm / model.MMPerM
}

func BarToPsi(bar float64) float64 {
	return bar * model.PsiPerBar
}
