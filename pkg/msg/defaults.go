package msg

// defaults is the built-in catalog. configs/messages.yml overrides entries
// with the same key when present.
var defaults = map[string]string{
	"app.start":   "HARU WEATHER 서버를 시작합니다",
	"app.started": "HARU WEATHER 서버가 시작되었습니다",
	"app.req-end":  "{0} {1} -> {2} ({3}) request_id={4}",
	"app.req-fail": "{0} {1} -> {2} ({3}) request_id={4} error={5}",

	"weather.api-key.missing": "OpenWeatherMap API 키가 설정되지 않았습니다. 현재는 모의 데이터로 동작합니다.",

	"weather.error.invalid-key":  "API 키가 유효하지 않습니다.",
	"weather.error.not-found":    "해당 도시를 찾을 수 없습니다.",
	"weather.error.rate-limited": "API 호출 한도를 초과했습니다. 잠시 후 다시 시도해주세요.",
	"weather.error.upstream":     "날씨 정보를 가져올 수 없습니다.",
	"weather.error.network":      "네트워크 연결을 확인해주세요.",
	"weather.error.unknown":      "알 수 없는 오류가 발생했습니다.",

	"location.error.permission-denied": "위치 권한이 거부되었습니다. 위치 권한을 허용해주세요.",
	"location.error.unavailable":       "위치 정보를 사용할 수 없습니다.",
	"location.error.timeout":           "위치 정보 요청이 시간 초과되었습니다.",
	"location.error.unsupported":       "이 환경은 위치 서비스를 지원하지 않습니다.",
	"location.error.ip-failed":         "IP 기반 위치 정보를 가져올 수 없습니다.",
	"location.error.both-failed":       "위치 정보를 가져올 수 없습니다. 직접 도시를 검색해주세요.",

	"storage.error.unavailable": "저장소를 사용할 수 없습니다.",

	"page.home.title":     "HARU WEATHER - 실시간 날씨 정보",
	"page.about.title":    "프로젝트 소개 - HARU WEATHER",
	"page.api-docs.title": "API 문서 - HARU WEATHER",
	"page.usage.title":    "사용법 - HARU WEATHER",
	"page.feedback.title": "피드백 - HARU WEATHER",

	"favorite.cron.start":    "즐겨찾기 날씨 갱신 작업을 시작합니다 request_id={0}",
	"favorite.cron.end":      "즐겨찾기 날씨 갱신 작업이 완료되었습니다 request_id={0}",
	"favorite.cron.enqueued": "즐겨찾기 {0}건을 갱신 대기열에 등록했습니다",

	"storage.cron.usage": "저장소 사용량: {0} (총 {1}건)",

	"feedback.created": "피드백이 등록되었습니다",
}
