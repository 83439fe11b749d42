package composer

const analysisInstruction = "Provide analysis citing the data."

const sectorInstruction = "Answer the EXACT question. If asking for declining stocks, list those with negative/lowest performance. If asking for top performers, list highest gains."

const generalPrompt = "Answer this stock market question: %s"

const (
	analysisTemperature = 0.3
	analysisMaxTokens   = 600
	sectorTemperature   = 0.3
	sectorMaxTokens     = 400
	generalTemperature  = 0.3
	generalMaxTokens    = 300
)
