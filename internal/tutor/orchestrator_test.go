package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeSessionStore keeps sessions in memory and records saves.
type fakeSessionStore struct {
	sessions map[string]*Session
	saveErr  error
	saves    int
}

func (f *fakeSessionStore) Load(_ context.Context, id string) (*Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("session not found: " + id)
	}
	return s, nil
}

func (f *fakeSessionStore) Save(_ context.Context, s *Session) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[s.ID] = s
	return nil
}

// fakeContent serves fixed pools.
type fakeContent struct {
	questions []Question
	transfer  []Question
	knowledge []KnowledgeItem
	topics    []Topic
}

func (f *fakeContent) QuestionsBySubject(_ context.Context, _ Subject) ([]Question, error) {
	return f.questions, nil
}

func (f *fakeContent) QuestionsByTopic(_ context.Context, _ Subject, topicID string) ([]Question, error) {
	var out []Question
	for _, q := range f.questions {
		if q.TopicID == topicID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeContent) TransferQuestions(_ context.Context, _ Subject, topicID string) ([]Question, error) {
	if topicID == "" {
		return f.transfer, nil
	}
	var out []Question
	for _, q := range f.transfer {
		if q.TopicID == topicID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeContent) KnowledgeBySubject(_ context.Context, _ Subject) ([]KnowledgeItem, error) {
	return f.knowledge, nil
}

func (f *fakeContent) TopicsBySubject(_ context.Context, _ Subject) ([]Topic, error) {
	return f.topics, nil
}

// fakeTeacher returns canned prose and counts calls.
type fakeTeacher struct {
	teachCalls  int
	hintCalls   int
	remCalls    int
	remCategory string
}

func (f *fakeTeacher) Teach(_ context.Context, _ Subject, _ []KnowledgeItem, _ []Message, _ string) string {
	f.teachCalls++
	return "讲解内容"
}

func (f *fakeTeacher) HintsFor(_ context.Context, _ Subject, _ []KnowledgeItem, _ Question) string {
	f.hintCalls++
	return "【解题提示】提示1（思路引导）: 想想定义"
}

func (f *fakeTeacher) Remediation(_ context.Context, _ Subject, _ []KnowledgeItem, _, errorCategory string, _ int) string {
	f.remCalls++
	f.remCategory = errorCategory
	return "换个角度再讲一遍"
}

// fakeGrader pops scripted verdicts in order.
type fakeGrader struct {
	verdicts []GradedAnswer
	calls    int
}

func (f *fakeGrader) Evaluate(_ context.Context, _ Question, _ string) GradedAnswer {
	f.calls++
	if len(f.verdicts) == 0 {
		return GradedAnswer{Grade: GradeC, Feedback: "没有脚本答案"}
	}
	v := f.verdicts[0]
	f.verdicts = f.verdicts[1:]
	return v
}

var (
	practiceQ = Question{
		ID: "q1", Subject: SubjectMath, TopicID: "math_quadratic", TopicName: "一元二次方程",
		Type: TypeChoice, Difficulty: 2, Content: "方程 x² - 5x + 6 = 0 的解是？",
		Options: []string{"A. x=2 或 x=3", "B. x=-2 或 x=-3"}, Answer: "A",
	}
	transferQ = Question{
		ID: "tq1", Subject: SubjectMath, TopicID: "math_quadratic", TopicName: "一元二次方程",
		Type: TypeApplication, Difficulty: 4, Content: "建立方程求矩形的长和宽。",
		Answer: "宽5米，长8米", Transfer: true,
	}
)

type fixture struct {
	orch     *Orchestrator
	store    *fakeSessionStore
	content  *fakeContent
	teacher  *fakeTeacher
	grader   *fakeGrader
	ctx      context.Context
	sessMath *Session
}

func newFixture(t *testing.T, verdicts ...GradedAnswer) *fixture {
	t.Helper()
	sess := &Session{
		ID:      "s1",
		Subject: SubjectMath,
		Phase:   PhaseLearning,
		Grade:   GradeC,
	}
	store := &fakeSessionStore{sessions: map[string]*Session{"s1": sess}}
	content := &fakeContent{
		questions: []Question{practiceQ},
		transfer:  []Question{transferQ},
		topics:    []Topic{{ID: "math_quadratic", Name: "一元二次方程"}, {ID: "math_function", Name: "函数基础"}},
	}
	teacher := &fakeTeacher{}
	grader := &fakeGrader{verdicts: verdicts}
	return &fixture{
		orch:     NewOrchestrator(store, content, teacher, grader, nil),
		store:    store,
		content:  content,
		teacher:  teacher,
		grader:   grader,
		ctx:      context.Background(),
		sessMath: sess,
	}
}

func (f *fixture) turn(t *testing.T, msg string) *TurnResult {
	t.Helper()
	result, err := f.orch.HandleTurn(f.ctx, "s1", msg)
	if err != nil {
		t.Fatalf("HandleTurn(%q): %v", msg, err)
	}
	return result
}

func TestHandleTurn_UnknownSession(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orch.HandleTurn(f.ctx, "nope", "你好"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestLearning_TeachesAndSelectsTopic(t *testing.T) {
	f := newFixture(t)

	result := f.turn(t, "我想学一元二次方程")
	if result.Phase != PhaseLearning {
		t.Errorf("phase = %q, want learning", result.Phase)
	}
	if result.ResponseText != "讲解内容" {
		t.Errorf("response = %q", result.ResponseText)
	}
	if f.teacher.teachCalls != 1 {
		t.Errorf("teach calls = %d, want 1", f.teacher.teachCalls)
	}
	if f.sessMath.TopicID != "math_quadratic" {
		t.Errorf("topic = %q, want math_quadratic", f.sessMath.TopicID)
	}
}

func TestLearning_PracticeIntentStartsAssessment(t *testing.T) {
	f := newFixture(t)

	result := f.turn(t, "给我出题吧")
	if result.Phase != PhaseAssessing {
		t.Fatalf("phase = %q, want assessing", result.Phase)
	}
	if !result.IsQuestionPrompt {
		t.Error("expected a question prompt")
	}
	if result.LiveQuestion == nil || result.LiveQuestion.ID != practiceQ.ID {
		t.Fatalf("unexpected live question: %+v", result.LiveQuestion)
	}
	if !strings.Contains(result.ResponseText, practiceQ.Content) {
		t.Error("response should include the question text")
	}
	if !strings.Contains(result.ResponseText, "A. x=2 或 x=3") {
		t.Error("response should include options")
	}
	if f.teacher.teachCalls != 0 {
		t.Error("practice intent must not invoke teaching")
	}
}

func TestLearning_EnglishPracticeKeyword(t *testing.T) {
	f := newFixture(t)

	result := f.turn(t, "can we do a quiz")
	if result.Phase != PhaseAssessing {
		t.Fatalf("phase = %q, want assessing", result.Phase)
	}
}

func TestLearning_EmptyPoolStaysLearning(t *testing.T) {
	f := newFixture(t)
	f.content.questions = nil

	result := f.turn(t, "出题")
	if result.Phase != PhaseLearning {
		t.Errorf("phase = %q, want learning", result.Phase)
	}
	if result.IsQuestionPrompt {
		t.Error("no question should be posed from an empty pool")
	}
	if !strings.Contains(result.ResponseText, "暂无练习题") {
		t.Errorf("unexpected response: %q", result.ResponseText)
	}
}

func TestAssessing_NoLiveQuestionRedirects(t *testing.T) {
	f := newFixture(t)
	f.sessMath.Phase = PhaseAssessing // no question was ever bound

	result := f.turn(t, "我的答案是A")
	if result.Phase != PhaseLearning {
		t.Errorf("phase = %q, want learning", result.Phase)
	}
	if f.grader.calls != 0 {
		t.Error("nothing should be graded without a live question")
	}
	if !strings.Contains(result.ResponseText, "未找到当前题目") {
		t.Errorf("unexpected response: %q", result.ResponseText)
	}
}

func TestAssessing_HintNeverGrades(t *testing.T) {
	f := newFixture(t)
	f.turn(t, "出题")

	before := f.sessMath.Grade
	result := f.turn(t, "给我提示")
	if result.Phase != PhaseAssessing {
		t.Errorf("phase = %q, want assessing", result.Phase)
	}
	if f.grader.calls != 0 {
		t.Error("hint request must not be graded")
	}
	if f.teacher.hintCalls != 1 {
		t.Errorf("hint calls = %d, want 1", f.teacher.hintCalls)
	}
	if result.Grade != before {
		t.Errorf("grade changed by hint: %q -> %q", before, result.Grade)
	}
	if !result.IsQuestionPrompt {
		t.Error("the question stays live through a hint")
	}

	// A second hint behaves identically.
	result = f.turn(t, "hint please")
	if result.Phase != PhaseAssessing || f.grader.calls != 0 {
		t.Error("repeated hints must stay in assessment without grading")
	}
	if f.teacher.hintCalls != 2 {
		t.Errorf("hint calls = %d, want 2", f.teacher.hintCalls)
	}
}

func TestAssessing_GradeAAdvancesToTransferTest(t *testing.T) {
	f := newFixture(t, GradedAnswer{IsCorrect: true, Grade: GradeA, Feedback: "完美"})
	f.turn(t, "出题")

	result := f.turn(t, "选A，因为因式分解得 (x-2)(x-3)=0")
	if result.Phase != PhaseTransferTest {
		t.Fatalf("phase = %q, want transfer_test", result.Phase)
	}
	if !result.IsQuestionPrompt || result.LiveQuestion == nil || !result.LiveQuestion.Transfer {
		t.Fatalf("expected a live transfer question, got %+v", result.LiveQuestion)
	}
	if result.Grade != GradeA {
		t.Errorf("grade = %q, want A", result.Grade)
	}
	if !strings.Contains(result.ResponseText, "完美") {
		t.Error("feedback should be carried into the transfer prompt")
	}
	if f.sessMath.ConsecutiveFailures != 0 {
		t.Errorf("failures = %d, want 0", f.sessMath.ConsecutiveFailures)
	}
}

func TestAssessing_GradeANoTransferPoolMeansMastered(t *testing.T) {
	f := newFixture(t, GradedAnswer{IsCorrect: true, Grade: GradeA, Feedback: "完美"})
	f.content.transfer = nil
	f.turn(t, "出题")

	result := f.turn(t, "A")
	if result.Phase != PhaseMastered {
		t.Fatalf("phase = %q, want mastered", result.Phase)
	}
	if !result.Mastered {
		t.Error("expected mastered flag")
	}
	if result.Grade != GradeA {
		t.Errorf("grade = %q, want A", result.Grade)
	}
}

func TestAssessing_GradeBReturnsToLearning(t *testing.T) {
	f := newFixture(t, GradedAnswer{IsCorrect: true, Grade: GradeB, Feedback: "基本正确"})
	f.sessMath.ConsecutiveFailures = 2
	f.turn(t, "出题")

	result := f.turn(t, "x=2 和 x=3")
	if result.Phase != PhaseLearning {
		t.Fatalf("phase = %q, want learning", result.Phase)
	}
	if result.Grade != GradeB {
		t.Errorf("grade = %q, want B", result.Grade)
	}
	if f.sessMath.ConsecutiveFailures != 0 {
		t.Errorf("correct answer must reset failures, got %d", f.sessMath.ConsecutiveFailures)
	}
	if result.Mastered {
		t.Error("B grade must not master the topic")
	}
}

func TestAssessing_WrongAnswerStaysWithRetry(t *testing.T) {
	f := newFixture(t,
		GradedAnswer{Grade: GradeC, Feedback: "不对哦"},
	)
	f.turn(t, "出题")

	result := f.turn(t, "B")
	if result.Phase != PhaseAssessing {
		t.Fatalf("phase = %q, want assessing", result.Phase)
	}
	if f.sessMath.ConsecutiveFailures != 1 {
		t.Errorf("failures = %d, want 1", f.sessMath.ConsecutiveFailures)
	}
	if !result.IsQuestionPrompt {
		t.Error("question stays live for a retry")
	}
}

func TestAssessing_WrongAnswerShowsSuggestion(t *testing.T) {
	f := newFixture(t,
		GradedAnswer{Grade: GradeC, Feedback: "不对哦", ImprovementSuggestion: "先写出判别式再代入"},
	)
	f.turn(t, "出题")

	result := f.turn(t, "B")
	if !strings.Contains(result.ResponseText, "改进建议") {
		t.Errorf("response should carry the suggestion:\n%s", result.ResponseText)
	}
	if !strings.Contains(result.ResponseText, "先写出判别式再代入") {
		t.Errorf("suggestion text missing:\n%s", result.ResponseText)
	}
}

func TestAssessing_WrongAnswerShowsErrorAnalysis(t *testing.T) {
	f := newFixture(t,
		GradedAnswer{
			Grade:            GradeC,
			Feedback:         "不对哦",
			ErrorCategory:    "概念理解错误",
			ErrorDescription: "把判别式符号记反了",
		},
	)
	f.turn(t, "出题")

	result := f.turn(t, "B")
	if !strings.Contains(result.ResponseText, "错误分析") {
		t.Errorf("response should carry the error analysis:\n%s", result.ResponseText)
	}
	if !strings.Contains(result.ResponseText, "概念理解错误") {
		t.Errorf("error category missing:\n%s", result.ResponseText)
	}
	if !strings.Contains(result.ResponseText, "把判别式符号记反了") {
		t.Errorf("error description missing:\n%s", result.ResponseText)
	}
}

func TestAssessing_ThirdFailureTriggersRemediation(t *testing.T) {
	f := newFixture(t,
		GradedAnswer{Grade: GradeC, Feedback: "不对"},
		GradedAnswer{Grade: GradeC, Feedback: "还是不对"},
		GradedAnswer{Grade: GradeB, Feedback: "仍然不对"},
	)
	f.turn(t, "出题")

	f.turn(t, "B")
	f.turn(t, "C")
	result := f.turn(t, "D")

	if result.Phase != PhaseRemediation {
		t.Fatalf("phase = %q, want remediation", result.Phase)
	}
	if result.Grade != GradeC {
		t.Errorf("remediation entry grade = %q, want C", result.Grade)
	}
	if f.teacher.remCalls != 1 {
		t.Errorf("remediation calls = %d, want 1", f.teacher.remCalls)
	}
	if !strings.Contains(result.ResponseText, "换个角度再讲一遍") {
		t.Error("remediation content should be in the response")
	}
	if f.sessMath.ConsecutiveFailures != 3 {
		t.Errorf("failures = %d, want 3", f.sessMath.ConsecutiveFailures)
	}
}

func TestAssessing_RemediationGetsErrorCategory(t *testing.T) {
	f := newFixture(t,
		GradedAnswer{Grade: GradeC, Feedback: "不对"},
		GradedAnswer{Grade: GradeC, Feedback: "还是不对"},
		GradedAnswer{Grade: GradeC, Feedback: "仍然不对", ErrorCategory: "计算错误"},
	)
	f.turn(t, "出题")

	f.turn(t, "B")
	f.turn(t, "C")
	f.turn(t, "D")

	if f.teacher.remCategory != "计算错误" {
		t.Errorf("remediation category = %q, want the final verdict's category", f.teacher.remCategory)
	}
}

func TestRemediation_ReturnsToLearningAndResetsFailures(t *testing.T) {
	f := newFixture(t)
	f.sessMath.Phase = PhaseRemediation
	f.sessMath.ConsecutiveFailures = 3

	result := f.turn(t, "好的，我明白了")
	if result.Phase != PhaseLearning {
		t.Fatalf("phase = %q, want learning", result.Phase)
	}
	if result.Grade != GradeC {
		t.Errorf("grade = %q, want C", result.Grade)
	}
	if f.sessMath.ConsecutiveFailures != 0 {
		t.Errorf("failures = %d, want 0", f.sessMath.ConsecutiveFailures)
	}
	if f.teacher.teachCalls != 1 {
		t.Errorf("teach calls = %d, want 1", f.teacher.teachCalls)
	}
}

func TestTransferTest_PassMasters(t *testing.T) {
	f := newFixture(t,
		GradedAnswer{IsCorrect: true, Grade: GradeA, Feedback: "完美"},
		GradedAnswer{IsCorrect: false, Grade: GradeB, Feedback: "思路对"},
	)
	f.turn(t, "出题")
	f.turn(t, "A") // into transfer test

	result := f.turn(t, "设宽为x…")
	if result.Phase != PhaseMastered {
		t.Fatalf("phase = %q, want mastered", result.Phase)
	}
	if !result.Mastered {
		t.Error("expected mastered flag")
	}
	if result.Grade != GradeA {
		t.Errorf("grade = %q, want A", result.Grade)
	}
	if !strings.Contains(result.ResponseText, "迁移测试通过") {
		t.Errorf("unexpected response: %q", result.ResponseText)
	}
}

func TestTransferTest_FailReturnsToLearningWithB(t *testing.T) {
	f := newFixture(t,
		GradedAnswer{IsCorrect: true, Grade: GradeA, Feedback: "完美"},
		GradedAnswer{IsCorrect: false, Grade: GradeC, Feedback: "偏了"},
	)
	f.turn(t, "出题")
	f.turn(t, "A")

	result := f.turn(t, "不会做")
	// "不会" is a hint keyword, so this asks for a hint first.
	if result.Phase != PhaseTransferTest {
		t.Fatalf("phase = %q, want transfer_test (hint)", result.Phase)
	}

	result = f.turn(t, "随便猜一个：长10宽4")
	if result.Phase != PhaseLearning {
		t.Fatalf("phase = %q, want learning", result.Phase)
	}
	if result.Grade != GradeB {
		t.Errorf("failed transfer grade = %q, want B", result.Grade)
	}
	if result.Mastered {
		t.Error("failed transfer must not master")
	}
}

func TestTransferTest_HintNeverGrades(t *testing.T) {
	f := newFixture(t, GradedAnswer{IsCorrect: true, Grade: GradeA, Feedback: "完美"})
	f.turn(t, "出题")
	f.turn(t, "A")

	gradedBefore := f.grader.calls
	result := f.turn(t, "给我提示")
	if result.Phase != PhaseTransferTest {
		t.Fatalf("phase = %q, want transfer_test", result.Phase)
	}
	if f.grader.calls != gradedBefore {
		t.Error("hint in transfer test must not be graded")
	}
	if !result.IsQuestionPrompt {
		t.Error("transfer question stays live through a hint")
	}
}

func TestTransferTest_NoLiveQuestionRedirects(t *testing.T) {
	f := newFixture(t)
	f.sessMath.Phase = PhaseTransferTest

	result := f.turn(t, "答案")
	if result.Phase != PhaseLearning {
		t.Errorf("phase = %q, want learning", result.Phase)
	}
	if f.grader.calls != 0 {
		t.Error("nothing should be graded without a live transfer question")
	}
}

func TestMastered_KeepsChattingAsLearning(t *testing.T) {
	f := newFixture(t)
	f.sessMath.Phase = PhaseMastered
	f.sessMath.Grade = GradeA

	result := f.turn(t, "再讲讲函数吧")
	if result.Phase != PhaseLearning {
		t.Errorf("phase = %q, want learning", result.Phase)
	}
	if f.teacher.teachCalls != 1 {
		t.Errorf("teach calls = %d, want 1", f.teacher.teachCalls)
	}
}

func TestHandleTurn_AppendsBothSidesAndSaves(t *testing.T) {
	f := newFixture(t)

	f.turn(t, "你好")
	if f.store.saves != 1 {
		t.Fatalf("saves = %d, want 1", f.store.saves)
	}
	msgs := f.sessMath.Messages
	if len(msgs) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[0].Content != "你好" {
		t.Errorf("unexpected user message: %+v", msgs[0])
	}
	if msgs[1].Role != RoleAssistant || msgs[1].Content != "讲解内容" {
		t.Errorf("unexpected assistant message: %+v", msgs[1])
	}
}

func TestHandleTurn_SaveFailureStillResponds(t *testing.T) {
	f := newFixture(t)
	f.store.saveErr = errors.New("disk full")

	result, err := f.orch.HandleTurn(f.ctx, "s1", "你好")
	if err != nil {
		t.Fatalf("save failure must not fail the turn: %v", err)
	}
	if result.ResponseText == "" {
		t.Error("expected a response despite the failed save")
	}
}

func TestWelcomeMessage_ListsTopics(t *testing.T) {
	f := newFixture(t)

	msg := f.orch.WelcomeMessage(f.ctx, SubjectMath)
	if !strings.Contains(msg, "数学") {
		t.Error("welcome should name the subject")
	}
	if !strings.Contains(msg, "一元二次方程") || !strings.Contains(msg, "函数基础") {
		t.Errorf("welcome should list topics: %q", msg)
	}
}
