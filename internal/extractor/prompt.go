package extractor

const extractPrompt = `Extract stock market entities from this question:

"%s"

Return JSON with:
- companies: list of SPECIFIC company names (e.g., "Apple", "Tesla") - DO NOT include generic words like "stocks", "companies", "sector"
- tickers: list of stock tickers (e.g., "AAPL", "TSLA")
- sectors: list of sectors (e.g., "technology", "healthcare", "finance")
- question_type: "stock_specific" if asking about ONE specific company/ticker, "sector" if asking about multiple stocks/sector, or "general"
- main_entity: the primary entity
- needs_analysis: false for simple facts (price, date), true for analysis/recommendations
- needs_news: true if asking about future or mentions news

IMPORTANT:
- If question mentions "stocks in [sector]", set question_type to "sector"
- Generic words like "stocks", "companies" are NOT company names
- Questions about "top 3 stocks", "declining stocks" are sector questions

Examples:
- "What are the 3 stocks in healthcare sector declining?" → {"companies": [], "sectors": ["healthcare"], "question_type": "sector"}
- "What is Apple's price?" → {"companies": ["Apple"], "question_type": "stock_specific", "needs_analysis": false}

Output JSON only, no other text:
{
  "companies": [],
  "tickers": [],
  "sectors": [],
  "question_type": "stock_specific",
  "main_entity": "",
  "needs_analysis": false,
  "needs_news": false
}`
