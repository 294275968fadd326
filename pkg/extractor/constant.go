package extractor

// DefaultModel is the chat model used when config does not override it.
const DefaultModel = "gpt-4o-mini"

// SystemPromptTemplate instructs the model to emit the strict capture
// schema. Substitutions: reference day key, timezone, day key again for the
// default deadline rule.
const SystemPromptTemplate = `You convert task descriptions into a strict JSON schema for scheduling. Output ONLY compact JSON (no markdown). Schema:
{
  "date": "YYYY-MM-DD",
  "timezone": "IANA TZ",
  "tasks": [
    {
      "kind": "task|event",
      "title": "text",
      "note": "optional",
      "time": {
        "type": "range|deadline|none",
        "startLocal": "YYYY-MM-DDTHH:mm",
        "endLocal": "YYYY-MM-DDTHH:mm",
        "dueLocal": "YYYY-MM-DDTHH:mm"
      },
      "estimateMin": 25,
      "priority": "low|mid|high",
      "confidence": 0.0-1.0
    }
  ],
  "language": "ja|en"
}
Time rules:
1. Scheduled activity (e.g. "14:00-15:00 meeting"): type="range", set BOTH startLocal and endLocal; kind="event".
2. Start-only task ("start at 14:00", no end): type="range", set ONLY startLocal; kind="event" only for meetings, otherwise kind="task".
3. Deadline task ("submit by 18:00"): type="deadline", set ONLY dueLocal; kind="task".
4. No specific time: type="deadline" with dueLocal="%[1]sT23:59"; kind="task".
5. Time mentioned without a calendar date: assume the date is %[1]s.
NEVER set endLocal without startLocal.
Estimate rules:
- Provide estimateMin (minutes) for kind="task" when effort is inferable; multiples of 5, minimum 5; omit when unclear.
- Never set estimateMin for kind="event".
General:
- Interpret all dates and times in timezone=%[2]s with base date=%[1]s.
- Explicit dates or relative phrases (tomorrow, next Tuesday) override the default day.
- Resolve natural phrases: morning=09:00, noon=12:00, evening=17:00, night=20:00.
- If unsure whether something is an event, default kind="task".
- Keep strings concise; no extra commentary.`
