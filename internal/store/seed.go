package store

import (
	"context"
	"fmt"

	"github.com/learnloop/learnloop/internal/tutor"
)

// Seed loads the preset knowledge base and question bank. It is a no-op
// when content already exists, so it is safe to run on every startup.
func Seed(ctx context.Context, s *Store) error {
	content := s.Content()

	n, err := content.CountQuestions(ctx)
	if err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, k := range presetKnowledge() {
		if err := content.CreateKnowledge(ctx, k); err != nil {
			return err
		}
	}
	for _, q := range presetQuestions() {
		if err := content.CreateQuestion(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func presetKnowledge() []tutor.KnowledgeItem {
	return []tutor.KnowledgeItem{
		{
			ID:        "ch-rhetoric-k1",
			Subject:   tutor.SubjectChinese,
			TopicID:   "ch_rhetoric",
			TopicName: "修辞手法",
			Title:     "常见修辞手法详解",
			Content: "修辞手法是语言表达的艺术技巧，常见的包括：\n" +
				"1. 比喻：用相似事物打比方，如\"月亮像一个银盘\"\n" +
				"2. 拟人：把事物人格化，如\"春风轻轻抚摸大地\"\n" +
				"3. 夸张：故意夸大或缩小，如\"飞流直下三千尺\"\n" +
				"4. 排比：结构相同的句子并列，增强气势\n" +
				"5. 对偶：字数相等、结构相同的两句对称",
			KeyPoints:      []string{"比喻需要有本体和喻体", "拟人赋予事物人的特征", "夸张要合理不失真"},
			CommonMistakes: []string{"混淆比喻和拟人", "把所有形容词都当作夸张"},
			IntuitionPumps: []string{"想想事物像什么？是比喻；想想事物会做什么人的动作？是拟人"},
		},
		{
			ID:        "ch-poetry-k1",
			Subject:   tutor.SubjectChinese,
			TopicID:   "ch_poetry",
			TopicName: "古诗鉴赏",
			Title:     "唐诗宋词鉴赏方法",
			Content: "古诗鉴赏的基本步骤：\n" +
				"1. 了解作者背景和创作时代\n" +
				"2. 理解诗词的字面意思\n" +
				"3. 分析意象和意境\n" +
				"4. 体会情感和主题\n" +
				"5. 欣赏艺术手法和语言特色\n\n" +
				"常见意象含义：月亮-思乡、柳-离别、梅花-高洁、菊花-隐逸",
			KeyPoints:      []string{"意象是寄托情感的具体事物", "意境是整体氛围", "要结合时代背景理解"},
			CommonMistakes: []string{"只看字面意思忽略深层含义", "不了解作者导致误解诗意"},
			IntuitionPumps: []string{"作者想表达什么情感？用了什么景物来表达？"},
		},
		{
			ID:        "math-quadratic-k1",
			Subject:   tutor.SubjectMath,
			TopicID:   "math_quadratic",
			TopicName: "一元二次方程",
			Title:     "一元二次方程的解法",
			Content: "一元二次方程 ax² + bx + c = 0 (a≠0) 的解法：\n" +
				"1. 因式分解法：将方程因式分解为 (x-x₁)(x-x₂)=0\n" +
				"2. 配方法：将方程配成完全平方形式\n" +
				"3. 公式法：x = (-b ± √(b²-4ac)) / 2a\n" +
				"4. 判别式 Δ = b²-4ac：Δ>0 两个不等实根；Δ=0 两个相等实根；Δ<0 无实根",
			KeyPoints:      []string{"公式法是万能方法", "判别式决定根的情况", "a不能为0"},
			CommonMistakes: []string{"忘记a≠0的条件", "公式中符号错误", "判别式计算错误"},
			IntuitionPumps: []string{"先看能否因式分解，不能就用公式法"},
		},
		{
			ID:        "math-function-k1",
			Subject:   tutor.SubjectMath,
			TopicID:   "math_function",
			TopicName: "函数基础",
			Title:     "函数的概念与性质",
			Content: "函数是一种对应关系：\n" +
				"1. 定义：对于集合A中的每个元素x，按照某种规则，在集合B中都有唯一确定的元素y与之对应\n" +
				"2. 三要素：定义域、值域、对应法则\n" +
				"3. 基本性质：单调性、奇偶性、周期性\n" +
				"4. 常见函数：一次函数、二次函数、指数函数、对数函数",
			KeyPoints:      []string{"一个x只能对应一个y", "定义域是自变量的取值范围", "值域是函数值的范围"},
			CommonMistakes: []string{"把一对多的关系当成函数", "忘记考虑定义域的限制"},
			IntuitionPumps: []string{"函数就像自动售货机：投入一个硬币，出来一个固定商品"},
		},
		{
			ID:        "en-tense-k1",
			Subject:   tutor.SubjectEnglish,
			TopicID:   "en_tense",
			TopicName: "时态",
			Title:     "英语常用时态详解",
			Content: "英语时态是表示动作发生时间和状态的语法形式：\n" +
				"1. 一般现在时：表示习惯、事实 (I study English every day)\n" +
				"2. 一般过去时：表示过去发生的事 (I studied English yesterday)\n" +
				"3. 现在进行时：表示正在进行 (I am studying English now)\n" +
				"4. 现在完成时：表示过去发生对现在有影响 (I have studied English for 3 years)\n" +
				"5. 过去进行时：表示过去某时正在进行 (I was studying when you called)",
			KeyPoints:      []string{"时态由动词形式体现", "注意时间标志词", "完成时强调对现在的影响"},
			CommonMistakes: []string{"混淆一般过去时和现在完成时", "第三人称单数忘记加s"},
			IntuitionPumps: []string{"看时间词：yesterday用过去时，now用进行时，already用完成时"},
		},
		{
			ID:        "en-passive-k1",
			Subject:   tutor.SubjectEnglish,
			TopicID:   "en_passive",
			TopicName: "被动语态",
			Title:     "被动语态的构成与用法",
			Content: "被动语态表示主语是动作的承受者：\n" +
				"1. 构成：be + 过去分词\n" +
				"2. 一般现在时被动：am/is/are + done\n" +
				"3. 一般过去时被动：was/were + done\n" +
				"4. 现在完成时被动：have/has been + done\n" +
				"5. 使用场景：不知道动作执行者、强调动作承受者、科技文章",
			KeyPoints:      []string{"be动词随时态变化", "过去分词形式不变", "by引出动作执行者"},
			CommonMistakes: []string{"be动词和过去分词形式不匹配", "不及物动词无被动语态"},
			IntuitionPumps: []string{"主语是'被...的'就用被动语态"},
		},
		{
			ID:        "hist-reform-k1",
			Subject:   tutor.SubjectHistory,
			TopicID:   "hist_reform",
			TopicName: "改革开放",
			Title:     "中国改革开放历程",
			Content: "改革开放是1978年以来中国的基本国策：\n" +
				"1. 背景：十年文革结束，经济亟需恢复\n" +
				"2. 开始：1978年十一届三中全会\n" +
				"3. 内容：对内改革（农村家庭联产承包、城市国企改革）、对外开放（经济特区、沿海开放城市）\n" +
				"4. 意义：实现了从计划经济到市场经济的转变，极大提高了人民生活水平\n" +
				"5. 关键人物：邓小平",
			KeyPoints:      []string{"1978年是开始时间", "改革从农村开始", "深圳是第一个经济特区"},
			CommonMistakes: []string{"混淆改革开放与新中国成立的时间", "不理解市场经济与计划经济的区别"},
			IntuitionPumps: []string{"改革=内部调整，开放=对外交流"},
		},
		{
			ID:        "hist-ancient-k1",
			Subject:   tutor.SubjectHistory,
			TopicID:   "hist_ancient",
			TopicName: "秦朝统一",
			Title:     "秦始皇统一六国",
			Content: "秦朝是中国第一个统一的封建王朝：\n" +
				"1. 时间：公元前221年\n" +
				"2. 人物：秦始皇嬴政\n" +
				"3. 统一措施：统一文字（小篆）、统一度量衡、统一货币、修驰道\n" +
				"4. 政治制度：废分封、行郡县、设三公九卿\n" +
				"5. 历史意义：结束了春秋战国的分裂局面，建立了中央集权制度",
			KeyPoints:      []string{"公元前221年统一", "郡县制取代分封制", "书同文车同轨"},
			CommonMistakes: []string{"混淆秦朝与其他朝代的制度", "不理解郡县制的意义"},
			IntuitionPumps: []string{"秦始皇的'统一'包括领土统一和制度统一两层含义"},
		},
		{
			ID:        "pol-economy-k1",
			Subject:   tutor.SubjectPolitics,
			TopicID:   "pol_economy",
			TopicName: "市场经济",
			Title:     "社会主义市场经济体制",
			Content: "社会主义市场经济是中国特色的经济体制：\n" +
				"1. 定义：在社会主义条件下发展市场经济\n" +
				"2. 特点：坚持公有制主体地位，多种所有制共同发展\n" +
				"3. 作用：市场在资源配置中起决定性作用，更好发挥政府作用\n" +
				"4. 优势：既发挥市场效率，又体现社会公平\n" +
				"5. 发展：从有计划商品经济到社会主义市场经济",
			KeyPoints:      []string{"市场起决定性作用", "公有制为主体", "政府要更好发挥作用"},
			CommonMistakes: []string{"认为市场经济就是资本主义", "忽视政府作用"},
			IntuitionPumps: []string{"市场是'看不见的手'，政府是'看得见的手'"},
		},
		{
			ID:        "pol-citizen-k1",
			Subject:   tutor.SubjectPolitics,
			TopicID:   "pol_citizen",
			TopicName: "公民权利",
			Title:     "公民的基本权利与义务",
			Content: "我国公民享有广泛的权利，也要履行相应义务：\n" +
				"1. 政治权利：选举权和被选举权、政治自由、监督权\n" +
				"2. 人身权利：人身自由、人格尊严、住宅不受侵犯\n" +
				"3. 社会经济权利：劳动权、休息权、社会保障权\n" +
				"4. 基本义务：维护国家统一、遵守宪法法律、依法纳税、服兵役\n" +
				"5. 权利与义务的关系：统一的、相辅相成的",
			KeyPoints:      []string{"权利和义务是统一的", "选举权需年满18周岁", "公民权利受法律保护"},
			CommonMistakes: []string{"只强调权利忽视义务", "混淆公民与人民的概念"},
			IntuitionPumps: []string{"享受权利的同时要履行义务，就像硬币的两面"},
		},
	}
}

func presetQuestions() []tutor.Question {
	return []tutor.Question{
		{
			ID:          "ch-rhetoric-q1",
			Subject:     tutor.SubjectChinese,
			TopicID:     "ch_rhetoric",
			TopicName:   "修辞手法",
			Type:        tutor.TypeChoice,
			Difficulty:  2,
			Content:     "下列句子使用了什么修辞手法？'春风又绿江南岸'",
			Options:     []string{"A. 比喻", "B. 拟人", "C. 夸张", "D. 排比"},
			Answer:      "B",
			Explanation: "'绿'字使春风具有了人的动作（使...变绿），这是拟人手法",
		},
		{
			ID:          "ch-rhetoric-q2",
			Subject:     tutor.SubjectChinese,
			TopicID:     "ch_rhetoric",
			TopicName:   "修辞手法",
			Type:        tutor.TypeJudgment,
			Difficulty:  1,
			Content:     "'他的心像一块石头一样硬'这句话使用了拟人手法。",
			Answer:      "错误",
			Explanation: "这是比喻手法，用石头来比喻心硬，有本体（心）和喻体（石头）",
		},
		{
			ID:          "ch-rhetoric-q3",
			Subject:     tutor.SubjectChinese,
			TopicID:     "ch_rhetoric",
			TopicName:   "修辞手法",
			Type:        tutor.TypeApplication,
			Difficulty:  4,
			Content:     "请用比喻和拟人两种修辞手法，分别写一句描写'月光'的句子，并说明为什么这样写能更好地表达情感。",
			Answer:      "开放性答案",
			Explanation: "比喻示例：月光如水银泻地。拟人示例：月光温柔地亲吻大地。",
			Transfer:    true,
		},
		{
			ID:          "ch-poetry-q1",
			Subject:     tutor.SubjectChinese,
			TopicID:     "ch_poetry",
			TopicName:   "古诗鉴赏",
			Type:        tutor.TypeQA,
			Difficulty:  3,
			Content:     "请分析李白《静夜思》中'床前明月光，疑是地上霜'的意境和情感。",
			Answer:      "诗人用月光如霜的意象，营造清冷孤寂的意境，表达思乡之情",
			Explanation: "月光本身就是思乡意象，'霜'字增添凄凉感，表达游子思乡",
		},
		{
			ID:          "math-quadratic-q1",
			Subject:     tutor.SubjectMath,
			TopicID:     "math_quadratic",
			TopicName:   "一元二次方程",
			Type:        tutor.TypeChoice,
			Difficulty:  2,
			Content:     "方程 x² - 5x + 6 = 0 的解是？",
			Options:     []string{"A. x=2 或 x=3", "B. x=-2 或 x=-3", "C. x=1 或 x=6", "D. x=-1 或 x=-6"},
			Answer:      "A",
			Explanation: "因式分解：(x-2)(x-3)=0，所以 x=2 或 x=3",
		},
		{
			ID:          "math-quadratic-q2",
			Subject:     tutor.SubjectMath,
			TopicID:     "math_quadratic",
			TopicName:   "一元二次方程",
			Type:        tutor.TypeFill,
			Difficulty:  3,
			Content:     "方程 2x² + 3x - 2 = 0 的两根之和为____，两根之积为____。",
			Answer:      "-3/2, -1",
			Explanation: "由韦达定理：x₁+x₂=-b/a=-3/2，x₁x₂=c/a=-2/2=-1",
		},
		{
			ID:          "math-quadratic-q3",
			Subject:     tutor.SubjectMath,
			TopicID:     "math_quadratic",
			TopicName:   "一元二次方程",
			Type:        tutor.TypeApplication,
			Difficulty:  4,
			Content:     "一个矩形的长比宽多3米，面积为40平方米。请建立方程并求出这个矩形的长和宽。",
			Answer:      "设宽为x，则x(x+3)=40，解得x=5，所以宽5米，长8米",
			Explanation: "这是一元二次方程的实际应用，需要正确建立方程模型",
			Transfer:    true,
		},
		{
			ID:          "math-function-q1",
			Subject:     tutor.SubjectMath,
			TopicID:     "math_function",
			TopicName:   "函数基础",
			Type:        tutor.TypeJudgment,
			Difficulty:  2,
			Content:     "y = x² 是一个函数，因为每个x值都对应唯一的y值。",
			Answer:      "正确",
			Explanation: "对于任意x，x²都有唯一确定的值，满足函数定义",
		},
		{
			ID:          "en-tense-q1",
			Subject:     tutor.SubjectEnglish,
			TopicID:     "en_tense",
			TopicName:   "时态",
			Type:        tutor.TypeChoice,
			Difficulty:  2,
			Content:     "I ____ English since I was 10 years old.",
			Options:     []string{"A. learn", "B. learned", "C. have learned", "D. am learning"},
			Answer:      "C",
			Explanation: "'since'是现在完成时的标志词，表示从过去开始持续到现在",
		},
		{
			ID:          "en-tense-q2",
			Subject:     tutor.SubjectEnglish,
			TopicID:     "en_tense",
			TopicName:   "时态",
			Type:        tutor.TypeFill,
			Difficulty:  3,
			Content:     "While I ____(read) a book, my phone ____(ring).",
			Answer:      "was reading, rang",
			Explanation: "while引导的从句用过去进行时，主句用一般过去时，表示过去进行中被打断",
		},
		{
			ID:          "en-tense-q3",
			Subject:     tutor.SubjectEnglish,
			TopicID:     "en_tense",
			TopicName:   "时态",
			Type:        tutor.TypeApplication,
			Difficulty:  4,
			Content:     "请用三种不同的时态（一般现在时、现在进行时、现在完成时）分别造一个关于'学习编程'的句子，并解释每个时态的用法。",
			Answer:      "开放性答案",
			Explanation: "例：I learn programming every day.(习惯) I am learning Python now.(正在进行) I have learned three languages.(完成对现在有影响)",
			Transfer:    true,
		},
		{
			ID:          "en-passive-q1",
			Subject:     tutor.SubjectEnglish,
			TopicID:     "en_passive",
			TopicName:   "被动语态",
			Type:        tutor.TypeJudgment,
			Difficulty:  2,
			Content:     "The letter was wrote by Tom. 这个句子的被动语态使用正确。",
			Answer:      "错误",
			Explanation: "write的过去分词是written，不是wrote。正确句子：The letter was written by Tom.",
		},
		{
			ID:          "hist-reform-q1",
			Subject:     tutor.SubjectHistory,
			TopicID:     "hist_reform",
			TopicName:   "改革开放",
			Type:        tutor.TypeChoice,
			Difficulty:  2,
			Content:     "中国改革开放的开始标志是？",
			Options:     []string{"A. 1949年新中国成立", "B. 1978年十一届三中全会", "C. 1992年南方谈话", "D. 2001年加入WTO"},
			Answer:      "B",
			Explanation: "1978年十一届三中全会作出了改革开放的伟大决策",
		},
		{
			ID:          "hist-reform-q2",
			Subject:     tutor.SubjectHistory,
			TopicID:     "hist_reform",
			TopicName:   "改革开放",
			Type:        tutor.TypeQA,
			Difficulty:  3,
			Content:     "请简述改革开放初期农村改革的主要内容及其意义。",
			Answer:      "实行家庭联产承包责任制，调动农民积极性，解放农村生产力",
			Explanation: "家庭联产承包责任制打破了人民公社体制，农民有了生产自主权",
		},
		{
			ID:          "hist-reform-q3",
			Subject:     tutor.SubjectHistory,
			TopicID:     "hist_reform",
			TopicName:   "改革开放",
			Type:        tutor.TypeApplication,
			Difficulty:  4,
			Content:     "结合改革开放的历史经验，分析'解放思想'与'经济发展'之间的关系。请举例说明。",
			Answer:      "开放性答案",
			Explanation: "解放思想是前提，突破旧观念才能推动改革；如突破姓资姓社的争论才有市场经济",
			Transfer:    true,
		},
		{
			ID:          "hist-ancient-q1",
			Subject:     tutor.SubjectHistory,
			TopicID:     "hist_ancient",
			TopicName:   "秦朝统一",
			Type:        tutor.TypeJudgment,
			Difficulty:  2,
			Content:     "秦始皇统一六国后实行分封制，把土地分给功臣。",
			Answer:      "错误",
			Explanation: "秦始皇废除分封制，实行郡县制，由中央直接管理地方",
		},
		{
			ID:          "pol-economy-q1",
			Subject:     tutor.SubjectPolitics,
			TopicID:     "pol_economy",
			TopicName:   "市场经济",
			Type:        tutor.TypeChoice,
			Difficulty:  2,
			Content:     "在社会主义市场经济中，资源配置起决定性作用的是？",
			Options:     []string{"A. 政府", "B. 市场", "C. 企业", "D. 个人"},
			Answer:      "B",
			Explanation: "党的十八届三中全会明确提出'市场在资源配置中起决定性作用'",
		},
		{
			ID:          "pol-economy-q2",
			Subject:     tutor.SubjectPolitics,
			TopicID:     "pol_economy",
			TopicName:   "市场经济",
			Type:        tutor.TypeQA,
			Difficulty:  3,
			Content:     "请解释'市场在资源配置中起决定性作用，更好发挥政府作用'的含义。",
			Answer:      "市场通过价格机制调节供需，政府进行宏观调控弥补市场失灵",
			Explanation: "这是市场与政府关系的核心表述，强调两者的有机结合",
		},
		{
			ID:          "pol-economy-q3",
			Subject:     tutor.SubjectPolitics,
			TopicID:     "pol_economy",
			TopicName:   "市场经济",
			Type:        tutor.TypeApplication,
			Difficulty:  4,
			Content:     "结合实际案例，分析政府在应对市场失灵（如疫情期间物资短缺）时应该如何发挥作用。",
			Answer:      "开放性答案",
			Explanation: "政府可采取价格管控、统一调配、增加供给等措施，体现政府的宏观调控作用",
			Transfer:    true,
		},
		{
			ID:          "pol-citizen-q1",
			Subject:     tutor.SubjectPolitics,
			TopicID:     "pol_citizen",
			TopicName:   "公民权利",
			Type:        tutor.TypeJudgment,
			Difficulty:  2,
			Content:     "公民只享有权利，不需要履行义务。",
			Answer:      "错误",
			Explanation: "权利和义务是统一的，公民在享有权利的同时必须履行相应义务",
		},
	}
}
