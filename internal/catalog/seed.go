package catalog

// DefaultTargetCount is the catalog length used when nothing else is configured.
const DefaultTargetCount = 500

// Dark colors chosen so neighbouring gradients feel connected.
var darkPalette = []string{
	"#0f172a", // slate-900
	"#111827", // gray-900
	"#1f2937", // gray-800
	"#0b1020", // blue-black
	"#0b132b", // deep blue
	"#1c2541", // steel blue
	"#232526", // charcoal
	"#2c3e50", // midnight blue
	"#000428", // deep navy
	"#1a1b2e", // oxford blue
	"#2b2d42", // gunmetal
	"#3a0d2a", // maroon dusk
	"#0b032d", // indigo-black
	"#2d3436", // charcoal dark
	"#081c15", // forest black
	"#1b4332", // dark green
	"#2a2a72", // indigo dark
	"#3c1053", // deep purple
	"#00416a", // dark teal
	"#0d324d", // dark blue
}

// DarkPalette returns a copy of the built-in gradient palette.
func DarkPalette() []string {
	return append([]string(nil), darkPalette...)
}

const anonymous = "익명"

var selfEsteemSeed = []SeedQuote{
	{"나는 스스로에게 친절할 자격이 있다.", anonymous, SelfEsteem},
	{"자존감은 내가 나와 맺는 약속에서 자란다.", anonymous, SelfEsteem},
	{"남의 인정보다 나의 존중을 택하라.", anonymous, SelfEsteem},
	{"내가 충분하지 않다는 생각이야말로 내가 바꿀 수 있는 생각이다.", anonymous, SelfEsteem},
	{"불완전함은 결함이 아니라 용기의 증거다.", "브레네 브라운", SelfEsteem},
	{"비교는 기쁨의 도둑이다. 나답게 가자.", "시어도어 루스벨트", SelfEsteem},
	{"나는 나의 기준으로 나를 평가한다.", anonymous, SelfEsteem},
	{"작은 승리를 기록할수록 자존감은 단단해진다.", anonymous, SelfEsteem},
	{"나는 과정 중의 작품이다. 지금도 충분히 가치 있다.", anonymous, SelfEsteem},
	{"경계는 나를 사랑하는 방식이다.", anonymous, SelfEsteem},
	{"타고난 가치는 성과로 늘거나 줄지 않는다.", anonymous, SelfEsteem},
	{"정직하게 나답게 사는 것이 가장 큰 자신감이다.", anonymous, SelfEsteem},
	{"자기비난 대신 자기격려를 선택하라.", anonymous, SelfEsteem},
	{"나는 내가 통제하는 것에 집중한다. 그게 나를 지킨다.", anonymous, SelfEsteem},
	{"나의 속도로 가도 괜찮다.", anonymous, SelfEsteem},
	{"완벽함이 아니라 진정성이 나를 빛나게 한다.", anonymous, SelfEsteem},
	{"스스로를 존중하면 세상도 나를 존중한다.", anonymous, SelfEsteem},
	{"내 목소리는 소중하다. 나는 들을 가치가 있다.", anonymous, SelfEsteem},
	{"내가 나에게 친절할 때 세상이 선명해진다.", anonymous, SelfEsteem},
	{"자존감은 결과가 아니라 습관이다.", anonymous, SelfEsteem},
}

var motivationSeed = []SeedQuote{
	{"작은 걸음이 큰 변화를 만든다.", anonymous, Motivation},
	{"완벽함보다 실행. 오늘 한 줄이 내일을 바꾼다.", anonymous, Motivation},
	{"꾸준함은 재능을 능가한다.", anonymous, Motivation},
	{"시작은 위대함의 절반이다.", "플라톤", Motivation},
	{"속도보다 방향. 나침반을 먼저 보라.", anonymous, Motivation},
	{"오늘의 1%가 1년 뒤 37배가 된다.", "제임스 클리어", Motivation},
	{"기회는 준비된 자를 선택한다.", "파스퇴르", Motivation},
	{"행동은 두려움의 해독제다.", "데일 카네기", Motivation},
	{"큰 꿈, 작은 시작, 끝까지.", anonymous, Motivation},
	{"기록은 성장을 가속한다.", anonymous, Motivation},
	{"포기하고 싶은 순간이 지나면 성장의 문이 열린다.", anonymous, Motivation},
	{"중요한 것부터 꾸준히.", anonymous, Motivation},
	{"의지는 근육이다. 쓰면 강해진다.", anonymous, Motivation},
	{"집중은 거절의 기술이다.", "스티브 잡스", Motivation},
	{"끝까지 가라. 그러면 보인다.", anonymous, Motivation},
	{"오늘의 몰입이 내일의 자유다.", anonymous, Motivation},
	{"작은 승리를 축하하라. 동력이 생긴다.", anonymous, Motivation},
	{"정직하게 쌓은 실력은 배신하지 않는다.", anonymous, Motivation},
	{"나의 리듬으로 지속 가능하게.", anonymous, Motivation},
	{"지금이 가장 좋은 시간이다.", anonymous, Motivation},
}

var calmSeed = []SeedQuote{
	{"호흡은 나의 닻이다. 숨을 들이쉬고 내쉰다.", "틱낫한", CalmAnxiety},
	{"지금 이 순간이 우리가 가진 전부다.", "에크하르트 톨레", CalmAnxiety},
	{"불안은 생각이고, 나는 생각이 아니다.", anonymous, CalmAnxiety},
	{"확실함이 아니라 용인할 수 있음이 평화를 준다.", anonymous, CalmAnxiety},
	{"내가 통제할 수 없는 것을 내려놓는다.", anonymous, CalmAnxiety},
	{"천천히 해도 괜찮다. 멈추지 않으면 된다.", "공자", CalmAnxiety},
	{"몸을 이완하면 마음이 따라온다.", anonymous, CalmAnxiety},
	{"걱정은 내일의 슬픔을 덜지 못하고 오늘의 힘을 앗아간다.", "코리 텐 붐", CalmAnxiety},
	{"감정은 파도다. 나는 서퍼다.", anonymous, CalmAnxiety},
	{"하루의 무게는 하루치만 들자.", anonymous, CalmAnxiety},
	{"불확실성 속에서도 할 수 있는 한 걸음을 내딛는다.", anonymous, CalmAnxiety},
	{"몸과 마음에 친절히 대하라. 회복은 친절에서 시작된다.", anonymous, CalmAnxiety},
	{"생각을 믿지 말고 관찰하라.", anonymous, CalmAnxiety},
	{"작은 루틴이 큰 평온을 만든다.", anonymous, CalmAnxiety},
	{"완벽한 계획보다 지금의 작은 행동.", anonymous, CalmAnxiety},
	{"불안은 정보다. 위협이 아니라 신호다.", anonymous, CalmAnxiety},
	{"내면의 공간을 넓히면 선택이 넓어진다.", anonymous, CalmAnxiety},
	{"평온은 연습이다. 매일 조금씩.", anonymous, CalmAnxiety},
	{"충분히 안전하다. 지금 이 순간, 여기서.", anonymous, CalmAnxiety},
	{"나를 괴롭히는 건 사건이 아니라 해석이다.", anonymous, CalmAnxiety},
}

// DefaultSeed returns the curated quotes in category order.
func DefaultSeed() []SeedQuote {
	seed := make([]SeedQuote, 0, len(selfEsteemSeed)+len(motivationSeed)+len(calmSeed))
	seed = append(seed, selfEsteemSeed...)
	seed = append(seed, motivationSeed...)
	seed = append(seed, calmSeed...)
	return seed
}
