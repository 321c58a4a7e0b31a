// Package locale holds every piece of user- and model-facing phrasing,
// keyed by language.
package locale

import (
	"fmt"
	"strings"
)

// Language is a supported presentation language.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Default is used when no language is given.
const Default = Arabic

// Parse accepts "ar"/"en" and their English names, case-insensitively.
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ar", "arabic":
		return Arabic, nil
	case "en", "english":
		return English, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want ar or en)", s)
	}
}

// Strings is the phrasing used for one language.
type Strings struct {
	// SolveSystemPrompt instructs the model how to solve and what each
	// field of the structured answer must contain.
	SolveSystemPrompt string

	// ImageInstruction accompanies a problem sent as a picture.
	ImageInstruction string

	// TextProblem wraps a problem sent as text. One %s verb.
	TextProblem string

	// SolveFailure is shown when the model's answer cannot be parsed.
	SolveFailure string

	// Narration wraps text sent for speech. One %s verb.
	Narration string

	// Voice is the prebuilt speech voice.
	Voice string
}

var table = map[Language]Strings{
	Arabic: {
		SolveSystemPrompt: arabicSolvePrompt,
		ImageInstruction:  "حلِي هذه المسألة بدقة حسب المنهج المصري.",
		TextProblem:       "حلِي هذه المسألة: %s.",
		SolveFailure:      "عذراً يا بطلة، واجهت مشكلة في كتابة الحل.",
		Narration:         "بصوت معلمة مصرية حنونة ومبهجة، اقرئي النص التالي للأطفال: %s",
		Voice:             "Kore",
	},
	English: {
		SolveSystemPrompt: englishSolvePrompt,
		ImageInstruction:  "Solve this math problem accurately.",
		TextProblem:       "Solve this problem: %s.",
		SolveFailure:      "Sorry, I had trouble writing the solution.",
		Narration:         "As a friendly and cheerful teacher, read the following text for children: %s",
		Voice:             "Puck",
	},
}

// Strings returns the phrasing for l. Unknown languages get the Default
// entry.
func (l Language) Strings() Strings {
	if s, ok := table[l]; ok {
		return s
	}
	return table[Default]
}

// Valid reports whether l has its own table entry.
func (l Language) Valid() bool {
	_, ok := table[l]
	return ok
}

// TextProblemPrompt wraps a text problem for l.
func (l Language) TextProblemPrompt(problem string) string {
	return fmt.Sprintf(l.Strings().TextProblem, problem)
}

// NarrationPrompt wraps text to be spoken in l.
func (l Language) NarrationPrompt(text string) string {
	return fmt.Sprintf(l.Strings().Narration, text)
}

// Languages lists the supported languages, default first.
func Languages() []Language {
	return []Language{Arabic, English}
}

const arabicSolvePrompt = `أنتِ معلمة رياضيات مصرية خبيرة للمرحلة الابتدائية (من الصف الأول للسادس).
مهمتك: حل المسألة الرياضية المرفقة بدقة كاملة وبأسلوب الكتاب المدرسي المصري باللغة العربية.

قواعد هامة جداً لتمثيل الحل:
1. حلي المسألة المعطاة فقط. لا تستخدمي نصوصاً عامة أو أمثلة غير مرتبطة.
2. في مسائل الوقت (الساعات والدقائق): التزمي دائماً بوضع خانة "الساعات" على اليمين وخانة "الدقائق" على اليسار (ساعة : دقيقة) لأن الكتابة بالعربية من اليمين لليسار.
3. في السبورة الذكية، عند كتابة عمليات الجمع أو الطرح الزمني، نظميها في أعمدة بحيث تكون الساعات في العمود الأيمن والدقائق في العمود الأيسر.

الهيكل المطلوب (JSON):
   - understanding: فهم المسألة (إعادة صياغة بسيطة، معطيات واضحة، والمطلوب).
   - textSteps: خطوات الحل المفصلة خطوة بخطوة باللغة العربية.
   - audioScript: نص الشرح الصوتي العام للحل النصي بلهجة مصرية محببة.
   - whiteboardSteps: قائمة بالخطوات التي ستظهر على السبورة. استخدمي الألوان: white (للكتابة العادية)، yellow (للخطوات الهامة)، green (للنتيجة).
   - whiteboardAudioScript: نص شرح المعلمة وهي تكتب على السبورة خطوة بخطوة.
   - drawingPrompt: وصف دقيق لصورة تعليمية بسيطة توضح هذه المسألة الرياضية. يجب أن يكون الوصف بالإنجليزية. تنبيه: اطلبي أن تكون أي نصوص أو أرقام داخل الصورة باللغة الإنجليزية حصراً.
   - drawingAudioScript: نص شرح المعلمة للرسم التوضيحي الذي سيظهر (مثلاً: "بصي يا بطلة، الرسمة دي بتوضح لنا...") باللهجة المصرية.
   - finalResult: الإجابة النهائية مع تشجيع حماسي.`

const englishSolvePrompt = `You are an expert Math teacher for primary school (grades 1 to 6).
Your task: Solve the attached math problem accurately following the standard curriculum approach in English.

Important rules:
1. Solve only the provided problem. Do not use generic texts or unrelated examples.
2. For time problems (hours and minutes): Hours should be on the left and minutes on the right (HH:MM) as per standard English formatting.

Required Structure (JSON):
   - understanding: Understanding of the problem (simple rephrasing, clear givens, and requirements).
   - textSteps: Detailed solution steps in English.
   - audioScript: The audio explanation script for the text solution in a friendly, encouraging tone.
   - whiteboardSteps: Steps to appear on the smartboard. Use colors: white (normal text), yellow (important steps), green (final result).
   - whiteboardAudioScript: Teacher's voice script while writing on the board step by step.
   - drawingPrompt: A detailed description for a simple educational drawing illustrating this math problem. In English. IMPORTANT: Ensure any text or labels inside the image are strictly in English.
   - drawingAudioScript: Teacher's script explaining the drawing to the student.
   - finalResult: The final answer and an encouraging phrase.`
